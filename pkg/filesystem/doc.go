// Package filesystem provides filesystem implementations for wsp.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used by mutating commands, and an afero-backed
// filesystem used for read-only commands and for tests.
package filesystem
