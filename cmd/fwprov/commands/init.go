package commands

import (
	"github.com/spf13/cobra"

	"github.com/naccdata/fwprov/cmd/fwprov/handlers"
)

// Init returns the command for interactively creating a project file.
//
// Flags:
//
//	--output, -o: Path to output file (default "project.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a project file",
		Long: `Interactively create a project description file.

The wizard asks for the project name, its centers, the datatypes to
ingest, and whether the project is published, then writes a YAML file
ready for 'fwprov apply'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "project.yaml", "Output file path")

	return cmd
}
