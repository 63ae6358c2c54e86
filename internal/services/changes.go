package services

import "github.com/ai-ml-platform/featstore/internal/entities"

// Action describes what an apply did, or a plan would do, to one registry
// object.
type Action string

const (
	ActionCreate    Action = "create"
	ActionUpdate    Action = "update"
	ActionUnchanged Action = "unchanged"
)

// Change records the action for a single object in an apply or plan.
type Change struct {
	Kind   entities.ObjectKind
	Name   string
	Action Action
}

// ApplyResult reports the outcome of an apply or plan: the per-object
// changes and the registry version they produced or would leave in place.
type ApplyResult struct {
	Version string
	Changes []Change
}

// Counts returns how many objects were created, updated, and unchanged.
func (r *ApplyResult) Counts() (created, updated, unchanged int) {
	for _, c := range r.Changes {
		switch c.Action {
		case ActionCreate:
			created++
		case ActionUpdate:
			updated++
		case ActionUnchanged:
			unchanged++
		}
	}
	return created, updated, unchanged
}
