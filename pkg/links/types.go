package links

import (
	"github.com/arthur-debert/wsp/pkg/types"
)

// Outcome is what a refresh did to one link.
type Outcome string

const (
	// OutcomeLinked means a link to the resolved source now exists.
	OutcomeLinked Outcome = "linked"

	// OutcomeRemoved means the old link was removed and no source exists.
	OutcomeRemoved Outcome = "removed"

	// OutcomeAbsent means there was no link and no source.
	OutcomeAbsent Outcome = "absent"

	// OutcomeSkipped means the link path holds a real file or directory.
	OutcomeSkipped Outcome = "skipped"
)

// Change records one link refresh.
type Change struct {
	File types.ManagedFile `json:"file"`

	// Source is the new link target, empty when no source was resolved.
	Source string `json:"source,omitempty"`

	// Previous is the old link target, empty when there was no symlink.
	Previous string `json:"previous,omitempty"`

	Outcome Outcome `json:"outcome"`
}

// State describes a link as it is on disk relative to the selection.
type State string

const (
	StateLinked    State = "linked"
	StateMissing   State = "missing"
	StateStale     State = "stale"
	StateUnmanaged State = "unmanaged"
	StateAbsent    State = "absent"
)

// Status is the inspection result for one managed file.
type Status struct {
	File types.ManagedFile `json:"file"`

	// Expected is the path the link should point at, empty when no source.
	Expected string `json:"expected,omitempty"`

	// Actual is the current link target, empty when not a symlink.
	Actual string `json:"actual,omitempty"`

	State State `json:"state"`
}
