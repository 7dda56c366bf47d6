package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfajardo/transmalla/internal/advisor"
	"github.com/mfajardo/transmalla/internal/bundle"
	"github.com/mfajardo/transmalla/internal/records"
	"github.com/mfajardo/transmalla/internal/report"
)

var adviseCmd = &cobra.Command{
	Use:   "advise <records.json>",
	Short: "Compute the recommendation for one extracted transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		doc, err := records.LoadFile(args[0])
		if err != nil {
			return err
		}

		ceiling, _ := cmd.Flags().GetInt("ceiling")
		adv := advisor.New(cat, advisor.Options{Logger: logger})
		rec := adv.Advise(advisor.Request{
			StudentName:   doc.Student.Name,
			StudentID:     doc.Student.ID,
			Records:       doc.Courses,
			CreditCeiling: ceiling,
		})

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Print(report.Render(rec))
		return nil
	},
}

func init() {
	adviseCmd.Flags().Int("ceiling", bundle.DefaultCreditCeiling, "Credit ceiling for the subsidy bundle")
	adviseCmd.Flags().Bool("json", false, "Emit the raw recommendation as JSON")
}
