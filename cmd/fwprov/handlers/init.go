package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/naccdata/fwprov/internal/config"
	"github.com/naccdata/fwprov/internal/project"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// runWizard runs the interactive project wizard.
	runWizard = config.RunWizard

	// writeProjectYAML writes the document to a file.
	writeProjectYAML = config.WriteProjectYAML
)

// Init runs the project wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if !isTerminal() {
		return fmt.Errorf("init requires an interactive terminal; write the project YAML by hand instead")
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	doc := result.ToDocument()

	if err := writeProjectYAML(doc, outputPath); err != nil {
		return err
	}

	printInitSuccess(outputPath, doc)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("fwprov - Flywheel project provisioning")
	fmt.Println("======================================")
	fmt.Println()
	fmt.Println("This wizard creates a project description file.")
	fmt.Println("Run 'fwprov apply <file>' afterwards to provision it.")
	fmt.Println()
}

// printInitSuccess prints the success message with a summary.
func printInitSuccess(outputPath string, doc project.Document) {
	fmt.Println()
	fmt.Println("Project file saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Project Summary")
	fmt.Println("---------------")
	fmt.Printf("  Name:      %s\n", doc.Name)
	fmt.Printf("  Centers:   %d\n", len(doc.Centers))
	fmt.Printf("  Datatypes: %d\n", len(doc.Datatypes))
	fmt.Printf("  Published: %t\n", doc.Published)
	fmt.Printf("  Primary:   %t\n", doc.Primary)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  fwprov apply --dry-run %s\n", outputPath)
	fmt.Printf("  fwprov apply %s\n", outputPath)
}
