package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mfajardo/transmalla/internal/catalog"
	"github.com/mfajardo/transmalla/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "transmalla",
	Short: "Asesor de transición entre mallas curriculares",
	Long: "Transmalla computa qué cursos del plan nuevo debe matricular un estudiante\n" +
		"en transición, y arma el paquete de gratuidad dentro del tope de créditos.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML catalog file (defaults to the built-in plan, or TRANSMALLA_CATALOG)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveCatalog loads the catalog using --catalog (highest priority),
// then the TRANSMALLA_CATALOG env var, then the built-in seed.
func resolveCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return catalog.LoadFile(p)
	}
	if p := os.Getenv("TRANSMALLA_CATALOG"); p != "" {
		return catalog.LoadFile(p)
	}
	return catalog.Default(), nil
}

// newLogger builds the process logger from the --verbose flag.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(verbose)
}
