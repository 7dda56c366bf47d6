package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfajardo/transmalla/internal/advisor"
	"github.com/mfajardo/transmalla/internal/batch"
	"github.com/mfajardo/transmalla/internal/bundle"
	"github.com/mfajardo/transmalla/internal/records"
	"github.com/mfajardo/transmalla/internal/report"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Process a directory of extracted transcripts in parallel",
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

		entries, err := os.ReadDir(args[0])
		if err != nil {
			return fmt.Errorf("read batch dir: %w", err)
		}
		var paths []string
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
				paths = append(paths, filepath.Join(args[0], e.Name()))
			}
		}
		sort.Strings(paths)
		if len(paths) == 0 {
			return fmt.Errorf("no .json records files in %s", args[0])
		}

		ceiling, _ := cmd.Flags().GetInt("ceiling")
		var requests []advisor.Request
		for _, p := range paths {
			doc, err := records.LoadFile(p)
			if err != nil {
				return err
			}
			requests = append(requests, advisor.Request{
				StudentName:   doc.Student.Name,
				StudentID:     doc.Student.ID,
				Records:       doc.Courses,
				CreditCeiling: ceiling,
			})
		}

		concurrency, _ := cmd.Flags().GetInt("concurrency")
		runner := batch.NewRunner(advisor.New(cat, advisor.Options{Logger: logger}), concurrency, logger)
		results, err := runner.Run(cmd.Context(), requests)
		if err != nil {
			return err
		}

		for i, res := range results {
			if i > 0 {
				fmt.Println(strings.Repeat("═", 110))
			}
			fmt.Print(report.Render(res.Recommendation))
		}
		fmt.Printf("\n%d estudiantes procesados\n", len(results))
		return nil
	},
}

func init() {
	batchCmd.Flags().Int("ceiling", bundle.DefaultCreditCeiling, "Credit ceiling for the subsidy bundle")
	batchCmd.Flags().Int("concurrency", batch.DefaultConcurrency, "Max transcripts processed in parallel")
}
