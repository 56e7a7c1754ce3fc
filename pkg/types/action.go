package types

// Action is what a run does with the snapshot.
type Action string

const (
	// ActionShow prints the current selection and changes nothing.
	ActionShow Action = "show"

	// ActionNextWorkspace selects the next workspace and its first environment.
	ActionNextWorkspace Action = "togglew"

	// ActionNextEnvironment selects the next environment of the current workspace.
	ActionNextEnvironment Action = "togglee"
)

// ParseAction maps a positional argument to an Action. Unknown values show
// the current selection.
func ParseAction(arg string) Action {
	switch Action(arg) {
	case ActionNextWorkspace:
		return ActionNextWorkspace
	case ActionNextEnvironment:
		return ActionNextEnvironment
	default:
		return ActionShow
	}
}

// Mutates reports whether the action rewrites links and the selection files.
func (a Action) Mutates() bool {
	return a == ActionNextWorkspace || a == ActionNextEnvironment
}
