package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the curriculum catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the new-curriculum courses in prerequisite order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("%-8s  %-44s  %4s  %s\n", "Código", "Nombre", "Cr.", "Prerrequisitos")
		fmt.Println(strings.Repeat("─", 100))
		for _, c := range cat.Courses() {
			name := c.Name
			if len(name) > 44 {
				name = name[:41] + "..."
			}
			fmt.Printf("%-8s  %-44s  %4d  %s\n",
				c.Code, name, c.Credits, strings.Join(c.Prerequisites, ", "))
		}
		fmt.Printf("\n%d cursos, %d equivalencias\n", cat.Len(), len(cat.Rules()))
		return nil
	},
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a catalog file without running the pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("Catálogo válido: %d cursos, %d equivalencias, %d cursos fundamentales\n",
			cat.Len(), len(cat.Rules()), len(cat.RootCourses()))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogCheckCmd)
}
