package provisioning

import (
	"context"
	"fmt"

	"github.com/naccdata/fwprov/internal/platform/flywheel"
	"github.com/naccdata/fwprov/internal/project"
	"github.com/naccdata/fwprov/internal/util/naming"
)

// Provisioner creates the Flywheel group/project structures for projects.
// One Provisioner covers one run; its Result accumulates across every
// project it is given.
type Provisioner struct {
	client flywheel.Client
	dryRun bool
	obs    Observer
	result Result
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithObserver replaces the default console observer.
func WithObserver(obs Observer) Option {
	return func(p *Provisioner) {
		p.obs = obs
	}
}

// NewProvisioner creates a Provisioner. With dryRun set, existence probes
// still run but no create call reaches the remote side.
func NewProvisioner(client flywheel.Client, dryRun bool, opts ...Option) *Provisioner {
	p := &Provisioner{
		client: client,
		dryRun: dryRun,
		obs:    NewConsoleObserver(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result returns the resources touched so far.
func (p *Provisioner) Result() *Result {
	return &p.result
}

// ProvisionProject creates all structures for one project: a group per
// center with its ingest and accepted projects, and the release structure
// when the project is published. Centers and datatypes are handled in
// input order so reruns produce identical logs.
func (p *Provisioner) ProvisionProject(ctx context.Context, proj *project.Project) error {
	obs := p.obs.WithFields(map[string]string{"project": proj.Name})

	if len(proj.Centers) == 0 {
		obs.Event(Event{
			Type:    EventValidationWarning,
			Message: fmt.Sprintf("not creating center groups for project %s: no centers given", proj.Name),
		})
	} else {
		for _, center := range proj.Centers {
			if err := p.provisionCenter(ctx, proj, center); err != nil {
				return fmt.Errorf("provision center %q: %w", center.Name, err)
			}
		}
	}

	if proj.Published {
		if err := p.provisionRelease(ctx, proj); err != nil {
			return fmt.Errorf("provision release for %q: %w", proj.Name, err)
		}
	} else {
		obs.Printf("Project %s has no release project", proj.Name)
	}

	return nil
}

// provisionCenter ensures the center's group, its ingest projects (active
// centers with datatypes only), and its accepted project.
func (p *Provisioner) provisionCenter(ctx context.Context, proj *project.Project, center project.Center) error {
	groupID, err := p.EnsureGroup(ctx, center.Name, center.GroupID())
	if err != nil {
		return err
	}

	if center.Active {
		if len(proj.Datatypes) > 0 {
			for _, datatype := range proj.Datatypes {
				projectID := naming.IngestProjectID(proj.Primary, proj.Name, datatype)
				label := naming.IngestLabel(proj.Name, datatype)
				if _, err := p.EnsureProject(ctx, groupID, projectID, label); err != nil {
					return err
				}
			}
		} else {
			p.obs.Event(Event{
				Type:    EventValidationWarning,
				Message: fmt.Sprintf("no ingest projects created for %s: no datatypes given", proj.Name),
			})
		}
	} else {
		p.obs.Printf("Not creating ingest projects for inactive center %s", center.Name)
	}

	acceptedID := naming.AcceptedProjectID(proj.Primary, proj.Name)
	_, err = p.EnsureProject(ctx, groupID, acceptedID, naming.AcceptedLabel(proj.Name))
	return err
}

// provisionRelease ensures the release group of a published project with
// its single master project.
func (p *Provisioner) provisionRelease(ctx context.Context, proj *project.Project) error {
	groupID, err := p.EnsureGroup(ctx, naming.ReleaseGroupLabel(proj.Name), naming.ReleaseGroupID(proj.Name))
	if err != nil {
		return err
	}
	_, err = p.EnsureProject(ctx, groupID, naming.MasterProjectID, naming.MasterProjectLabel)
	return err
}

// EnsureGroup creates a group if it does not already exist and returns its
// identifier. Label and ID are sanitized first.
func (p *Provisioner) EnsureGroup(ctx context.Context, label, id string) (string, error) {
	label = p.sanitized(label, naming.SanitizeLabel(label))
	id = p.sanitized(id, naming.SanitizeGroupID(id))

	exists, err := p.pathExists(ctx, id)
	if err != nil {
		return "", err
	}
	if exists {
		p.obs.Event(Event{Type: EventResourceExists, Resource: id, Message: "group already exists"})
		p.result.add(Resource{Kind: KindGroup, Ref: id, Label: label, Action: ActionExists})
		return id, nil
	}

	p.obs.Event(Event{
		Type:     EventResourceCreating,
		Resource: id,
		Fields:   map[string]string{"label": label},
	})

	if p.dryRun {
		p.obs.Event(Event{Type: EventResourceSkipped, Resource: id, Message: "dry-run"})
		p.result.add(Resource{Kind: KindGroup, Ref: id, Label: label, Action: ActionPlanned})
		return id, nil
	}

	createdID, err := p.client.AddGroup(ctx, id, label)
	if err != nil {
		return "", fmt.Errorf("create group %q: %w", id, err)
	}
	p.obs.Event(Event{Type: EventResourceCreated, Resource: createdID})
	p.result.add(Resource{Kind: KindGroup, Ref: createdID, Label: label, RemoteID: createdID, Action: ActionCreated})
	return createdID, nil
}

// EnsureProject creates a project inside a group if the group/project path
// does not already resolve, and returns the fw:// reference for the path.
// The project ID is used verbatim as the path segment; only the label is
// sanitized.
func (p *Provisioner) EnsureProject(ctx context.Context, groupID, projectID, label string) (string, error) {
	label = p.sanitized(label, naming.SanitizeLabel(label))

	path := groupID + "/" + projectID
	ref := "fw://" + path

	exists, err := p.pathExists(ctx, path)
	if err != nil {
		return "", err
	}
	if exists {
		p.obs.Event(Event{Type: EventResourceExists, Resource: ref, Message: "project already exists"})
		p.result.add(Resource{Kind: KindProject, Ref: ref, Label: label, Action: ActionExists})
		return ref, nil
	}

	p.obs.Event(Event{
		Type:     EventResourceCreating,
		Resource: ref,
		Fields:   map[string]string{"label": label},
	})

	if p.dryRun {
		p.obs.Event(Event{Type: EventResourceSkipped, Resource: ref, Message: "dry-run"})
		p.result.add(Resource{Kind: KindProject, Ref: ref, Label: label, Action: ActionPlanned})
		return ref, nil
	}

	group, err := p.client.GetGroup(ctx, groupID)
	if err != nil {
		return "", fmt.Errorf("get group %q: %w", groupID, err)
	}
	created, err := group.AddProject(ctx, label)
	if err != nil {
		return "", fmt.Errorf("create project %q: %w", ref, err)
	}

	p.obs.Event(Event{
		Type:     EventResourceCreated,
		Resource: ref,
		Fields:   map[string]string{"remote_id": created.ID},
	})
	p.result.add(Resource{Kind: KindProject, Ref: ref, Label: label, RemoteID: created.ID, Action: ActionCreated})
	return ref, nil
}

// pathExists probes whether a group or group/project path resolves
// remotely. Only not-found maps to false; any other lookup failure aborts
// the run.
func (p *Provisioner) pathExists(ctx context.Context, path string) (bool, error) {
	_, err := p.client.Lookup(ctx, path)
	if err == nil {
		return true, nil
	}
	if flywheel.IsNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("lookup %q: %w", path, err)
}

// sanitized reports a rewrite when the sanitizer changed the value.
func (p *Provisioner) sanitized(original, safe string) string {
	if safe != original {
		p.obs.Event(Event{
			Type:    EventNameSanitized,
			Message: fmt.Sprintf("changed from %q to %q", original, safe),
		})
	}
	return safe
}
