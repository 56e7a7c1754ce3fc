// Package workspace holds the selection logic of wsp.
//
// A Snapshot is a point-in-time view of the persisted selection and of the
// workspace tree: every workspace under the root and, per workspace, every
// environment. It is built fresh on each run and never mutated. The cycler
// methods compute the next selection from it with circular wraparound, and
// Write persists a selection back to the two selection files.
//
// The selection files are read before the directories are scanned. If the
// tree changes between the two steps the snapshot reflects a mix of both
// states; nothing here synchronizes with other wsp processes.
package workspace
