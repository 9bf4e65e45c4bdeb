// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the fwprov CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fwprov",
		Short: "Provision Flywheel groups and projects from a project file",
	}

	cmd.AddCommand(Apply())
	cmd.AddCommand(Init())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
