package flywheel

import (
	"context"
)

// Container is the resolved target of a lookup: a group or a project,
// depending on the path depth.
type Container struct {
	ID    string `json:"_id"`
	Label string `json:"label"`
	Type  string `json:"container_type"`
}

// Project is a project container returned by creation calls.
type Project struct {
	ID    string `json:"_id"`
	Label string `json:"label"`
	Group string `json:"group"`
}

// Group is a handle to an existing remote group. Project creation is
// scoped to the group it was fetched from.
type Group interface {
	// ID returns the group identifier.
	ID() string

	// AddProject creates a project with the given label inside the group
	// and returns the created project. The remote side assigns the
	// project's identifier.
	AddProject(ctx context.Context, label string) (*Project, error)
}

// GroupManager defines the interface for managing groups.
type GroupManager interface {
	// Lookup resolves a path of the form "<group>" or "<group>/<project>".
	// A missing target yields an error satisfying IsNotFound.
	Lookup(ctx context.Context, path string) (*Container, error)

	// AddGroup creates a group with the given identifier and label and
	// returns the identifier of the created group.
	AddGroup(ctx context.Context, id, label string) (string, error)

	// GetGroup fetches a handle to an existing group.
	GetGroup(ctx context.Context, id string) (Group, error)
}

// Client combines the remote capabilities consumed by provisioning.
type Client interface {
	GroupManager
}
