// Package types defines the core types and interfaces used throughout wsp.
// This includes the FS interface every component performs I/O through, the
// WorkspaceConfig selection value, the ManagedFile descriptor and the Action
// enumeration dispatched by the command layer.
package types
