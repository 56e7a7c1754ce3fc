// Package switcher runs wsp's commands end to end.
//
// Switch takes a fresh snapshot, selects according to the action, prints
// the selection, and for mutating actions refreshes every managed link and
// then persists the selection. The selection is persisted only when all link
// updates succeeded. Status and List are read-only views of the same state.
package switcher
