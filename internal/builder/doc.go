// Package builder materializes a layout under a target root. Apply creates
// directories, files, and symlinks in declaration order, idempotently and
// without ever truncating an existing file. Plan previews the same decisions
// without touching the filesystem, and Verify checks an existing tree against
// a layout.
package builder
