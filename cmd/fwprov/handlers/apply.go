// Package handlers implements the business logic for CLI commands.
//
// Handler functions are called by the command definitions in the commands
// package. They are framework-agnostic and testable independently of cobra;
// external collaborators are bound through factory function variables that
// tests replace.
package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/naccdata/fwprov/internal/config"
	"github.com/naccdata/fwprov/internal/platform/flywheel"
	"github.com/naccdata/fwprov/internal/project"
	"github.com/naccdata/fwprov/internal/provisioning"
)

// Provisioner interface for testing - matches provisioning.Provisioner.
type Provisioner interface {
	ProvisionProject(ctx context.Context, proj *project.Project) error
	Result() *provisioning.Result
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// fromEnv loads client settings from the environment.
	fromEnv = config.FromEnv

	// loadProjects loads project documents from a YAML file.
	loadProjects = config.LoadProjects

	// newClient creates a Flywheel API client.
	newClient = func(cfg *config.Flywheel) flywheel.Client {
		return flywheel.NewRealClient(
			cfg.APIKey,
			flywheel.WithBaseURL(cfg.APIURL),
			flywheel.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		)
	}

	// newProvisioner creates a provisioner for one run.
	newProvisioner = func(client flywheel.Client, dryRun bool) Provisioner {
		return provisioning.NewProvisioner(client, dryRun)
	}
)

// Apply provisions Flywheel groups and projects from a project file.
//
// The effective dry-run mode is the OR of the --dry-run flag and the
// FW_DRY_RUN environment setting; it is fixed for the whole run. Remote
// failures abort the run with the first error; there is no partial-progress
// summary beyond the per-resource log events already emitted.
func Apply(ctx context.Context, projectFile string, dryRun bool) error {
	cfg, err := fromEnv()
	if err != nil {
		return err
	}

	dryRun = dryRun || cfg.DryRun
	if err := cfg.Validate(dryRun); err != nil {
		return err
	}

	projects, err := loadProjects(projectFile)
	if err != nil {
		return err
	}

	mode := "live"
	if dryRun {
		mode = "dry-run"
	}
	log.Printf("Provisioning %d project(s) from %s (%s)", len(projects), projectFile, mode)

	prov := newProvisioner(newClient(cfg), dryRun)
	for _, proj := range projects {
		if err := prov.ProvisionProject(ctx, proj); err != nil {
			return fmt.Errorf("provisioning project %q failed: %w", proj.Name, err)
		}
	}

	fmt.Print(renderRunSummary(prov.Result(), dryRun))
	return nil
}
