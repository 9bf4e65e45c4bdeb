package provisioning

// Action describes what a run did (or would do) for one resource.
type Action string

const (
	// ActionCreated means the resource was created during this run.
	ActionCreated Action = "created"
	// ActionExists means the resource already existed and was left alone.
	ActionExists Action = "exists"
	// ActionPlanned means the resource would be created outside dry-run.
	ActionPlanned Action = "planned"
)

// ResourceKind distinguishes groups from projects in the run result.
type ResourceKind string

const (
	KindGroup   ResourceKind = "group"
	KindProject ResourceKind = "project"
)

// Resource is one group or project touched by a run.
type Resource struct {
	Kind  ResourceKind
	Ref   string // group ID, or fw://<group>/<project> reference
	Label string
	// RemoteID is the identifier assigned by the remote side on creation.
	// For projects this differs from the requested path segment; the
	// constructed reference stays authoritative for rerun comparisons.
	RemoteID string
	Action   Action
}

// Result accumulates the resources touched by one provisioning run.
type Result struct {
	Resources []Resource
}

func (r *Result) add(res Resource) {
	r.Resources = append(r.Resources, res)
}

// Count returns the number of resources with the given action.
func (r *Result) Count(action Action) int {
	n := 0
	for _, res := range r.Resources {
		if res.Action == action {
			n++
		}
	}
	return n
}
