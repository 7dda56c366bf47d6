package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfajardo/transmalla/internal/advisor"
	"github.com/mfajardo/transmalla/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the advisory pipeline over HTTP",
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

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			if env := os.Getenv("TRANSMALLA_ADDR"); env != "" {
				addr = env
			} else {
				addr = ":8080"
			}
		}

		adv := advisor.New(cat, advisor.Options{Logger: logger})
		return server.New(adv, logger).Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (defaults to TRANSMALLA_ADDR or :8080)")
}
