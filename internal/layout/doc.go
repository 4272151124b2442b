// Package layout handles parsing and validation of layout files. A layout is
// an ordered list of directory, file, and symlink entries to materialize under
// a target root. Files are validated against a JSON Schema plus structural
// rules the schema cannot express (path containment, ordering, duplicates).
package layout
