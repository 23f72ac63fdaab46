// Package source locates mechanism configurations: a local file or v0
// directory, or a path inside a git repository cloned with go-git. A
// Watcher re-runs validation when the files change.
package source
