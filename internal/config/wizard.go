package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/naccdata/fwprov/internal/project"
)

// datatypeOptions are the datatypes offered by the wizard.
var datatypeOptions = []huh.Option[string]{
	huh.NewOption("Form", "form"),
	huh.NewOption("DICOM", "dicom"),
	huh.NewOption("Image", "image"),
	huh.NewOption("Genetic", "genetic"),
}

// WizardResult holds the user's choices from the wizard.
type WizardResult struct {
	Name      string
	Centers   string // one center per line, "!" prefix marks inactive
	Datatypes []string
	Published bool
	Primary   bool
}

// RunWizard runs the interactive project wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Display name of the research project").
				Placeholder("ADRC").
				Value(&result.Name).
				Validate(validateProjectName),

			huh.NewConfirm().
				Title("Primary project of the coordinating center?").
				Description("The primary project claims the bare accepted/ingest IDs in shared center groups").
				Value(&result.Primary),
		),

		huh.NewGroup(
			huh.NewText().
				Title("Centers").
				Description("One center per line. Prefix a line with '!' to mark the center inactive.").
				Placeholder("Site A\n!Site B").
				Value(&result.Centers),
		),

		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Datatypes").
				Description("One ingest project is created per datatype in each active center").
				Options(datatypeOptions...).
				Value(&result.Datatypes),

			huh.NewConfirm().
				Title("Published?").
				Description("Published projects get a release group with a master project").
				Value(&result.Published),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToDocument converts the wizard result to a project document.
func (r *WizardResult) ToDocument() project.Document {
	doc := project.Document{
		Name:      strings.TrimSpace(r.Name),
		Datatypes: r.Datatypes,
		Published: r.Published,
		Primary:   r.Primary,
	}

	for _, line := range strings.Split(r.Centers, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		active := true
		if strings.HasPrefix(line, "!") {
			active = false
			line = strings.TrimSpace(strings.TrimPrefix(line, "!"))
		}
		if line == "" {
			continue
		}
		doc.Centers = append(doc.Centers, project.CenterDoc{Name: line, Active: active})
	}

	return doc
}

func validateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name must not be empty")
	}
	return nil
}
