// Package links points the managed files at the selected workspace.
//
// For each managed file the source directory is resolved in order:
//
//  1. <root>/<workspace>/<environment> if it holds an entry with the file's name
//  2. <root>/<workspace>/default if it holds one
//  3. none
//
// The link at <target>/<name> is then refreshed: an existing symlink is
// removed, and a new one to <source>/<name> is created when a source was
// found. Anything at the link path that is not a symlink is left alone; wsp
// never deletes real files or directories.
package links
