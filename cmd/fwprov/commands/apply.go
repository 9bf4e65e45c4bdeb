package commands

import (
	"github.com/spf13/cobra"

	"github.com/naccdata/fwprov/cmd/fwprov/handlers"
)

// Apply returns the command for provisioning project structures in Flywheel.
//
// One positional argument: the project YAML file. The file is a YAML stream
// with one document per project (name, centers, datatypes, published flag).
//
// Optional flags:
//
//	--dry-run: log intended creations without touching the remote side
//
// Environment variables:
//
//	FW_API_KEY: Flywheel API key (required for live runs)
//	FW_API_URL: Flywheel instance URL (default: https://api.flywheel.io)
//	FW_DRY_RUN: same effect as --dry-run
func Apply() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply <project-file>",
		Short: "Create groups and projects for a project file",
		Long: `Create the Flywheel groups and projects described by a project file.

For every center of a project this creates the center's group, one ingest
project per datatype (active centers only), and an accepted project.
Published projects additionally get a release group with a master project.

Every creation is idempotent: structures that already exist are reported
and left untouched, so re-applying the same file is safe.

Examples:
  # Preview what would be created
  fwprov apply --dry-run program.yaml

  # Provision for real
  FW_API_KEY=... fwprov apply program.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Apply(cmd.Context(), args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log intended creations without calling the remote API")

	return cmd
}
