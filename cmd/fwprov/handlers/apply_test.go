package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naccdata/fwprov/internal/config"
	"github.com/naccdata/fwprov/internal/platform/flywheel"
	"github.com/naccdata/fwprov/internal/project"
	"github.com/naccdata/fwprov/internal/provisioning"
)

// fakeProvisioner records the projects it was asked to provision.
type fakeProvisioner struct {
	provisioned []string
	err         error
}

func (f *fakeProvisioner) ProvisionProject(_ context.Context, proj *project.Project) error {
	if f.err != nil {
		return f.err
	}
	f.provisioned = append(f.provisioned, proj.Name)
	return nil
}

func (f *fakeProvisioner) Result() *provisioning.Result {
	return &provisioning.Result{}
}

// withApplyFakes swaps the factory variables for one test.
func withApplyFakes(t *testing.T, cfg *config.Flywheel, projects []*project.Project, loadErr error, fake *fakeProvisioner) (gotDryRun *bool) {
	t.Helper()

	origFromEnv := fromEnv
	origLoad := loadProjects
	origNewClient := newClient
	origNewProvisioner := newProvisioner
	t.Cleanup(func() {
		fromEnv = origFromEnv
		loadProjects = origLoad
		newClient = origNewClient
		newProvisioner = origNewProvisioner
	})

	fromEnv = func() (*config.Flywheel, error) { return cfg, nil }
	loadProjects = func(string) ([]*project.Project, error) { return projects, loadErr }
	newClient = func(*config.Flywheel) flywheel.Client { return &flywheel.MockClient{} }

	gotDryRun = new(bool)
	newProvisioner = func(_ flywheel.Client, dryRun bool) Provisioner {
		*gotDryRun = dryRun
		return fake
	}
	return gotDryRun
}

func TestApply(t *testing.T) {
	fake := &fakeProvisioner{}
	projects := []*project.Project{{Name: "ADRC"}, {Name: "LBD Study"}}
	cfg := &config.Flywheel{APIKey: "secret", APIURL: "https://api.flywheel.io"}
	gotDryRun := withApplyFakes(t, cfg, projects, nil, fake)

	err := Apply(context.Background(), "projects.yaml", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"ADRC", "LBD Study"}, fake.provisioned)
	assert.False(t, *gotDryRun)
}

func TestApplyDryRunFlag(t *testing.T) {
	fake := &fakeProvisioner{}
	cfg := &config.Flywheel{APIURL: "https://api.flywheel.io"}
	gotDryRun := withApplyFakes(t, cfg, []*project.Project{{Name: "ADRC"}}, nil, fake)

	// No API key is fine on a dry run.
	err := Apply(context.Background(), "projects.yaml", true)
	require.NoError(t, err)
	assert.True(t, *gotDryRun)
}

func TestApplyDryRunFromEnv(t *testing.T) {
	fake := &fakeProvisioner{}
	cfg := &config.Flywheel{APIURL: "https://api.flywheel.io", DryRun: true}
	gotDryRun := withApplyFakes(t, cfg, []*project.Project{{Name: "ADRC"}}, nil, fake)

	err := Apply(context.Background(), "projects.yaml", false)
	require.NoError(t, err)
	assert.True(t, *gotDryRun)
}

func TestApplyLiveRequiresAPIKey(t *testing.T) {
	fake := &fakeProvisioner{}
	cfg := &config.Flywheel{APIURL: "https://api.flywheel.io"}
	withApplyFakes(t, cfg, []*project.Project{{Name: "ADRC"}}, nil, fake)

	err := Apply(context.Background(), "projects.yaml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FW_API_KEY")
	assert.Empty(t, fake.provisioned)
}

func TestApplyLoadError(t *testing.T) {
	fake := &fakeProvisioner{}
	cfg := &config.Flywheel{APIKey: "secret", APIURL: "https://api.flywheel.io"}
	withApplyFakes(t, cfg, nil, fmt.Errorf("error in YAML file projects.yaml: bad indent"), fake)

	err := Apply(context.Background(), "projects.yaml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error in YAML file")
	assert.Empty(t, fake.provisioned)
}

func TestApplyProvisionError(t *testing.T) {
	fake := &fakeProvisioner{err: fmt.Errorf("lookup \"site-a\": boom")}
	cfg := &config.Flywheel{APIKey: "secret", APIURL: "https://api.flywheel.io"}
	withApplyFakes(t, cfg, []*project.Project{{Name: "ADRC"}}, nil, fake)

	err := Apply(context.Background(), "projects.yaml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `provisioning project "ADRC" failed`)
	assert.Contains(t, err.Error(), "boom")
}
