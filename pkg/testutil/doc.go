// Package testutil provides utilities for testing wsp components.
//
// Key components:
//   - TestEnvironment: isolated home directory and workspace root, either in
//     memory (afero MemMapFs) or on the real filesystem in a temp dir
//   - Workspace builders: CreateWorkspace, AddFile, SetSelection
//
// Usage guidelines:
//   - Selection, snapshot and listing tests use EnvMemoryOnly
//   - Anything touching symlinks needs EnvIsolated, since MemMapFs has no links
package testutil
