package layout

// Layout is the parsed form of a layout file: identity fields plus the
// ordered entries to create.
type Layout struct {
	Name           string  `yaml:"name" json:"name"`
	Version        string  `yaml:"version,omitempty" json:"version,omitempty"`
	Description    string  `yaml:"description,omitempty" json:"description,omitempty"`
	MinToolVersion string  `yaml:"min_tool_version,omitempty" json:"min_tool_version,omitempty"`
	Entries        []Entry `yaml:"entries" json:"entries"`
}

// Entry is one item of a layout. Path is relative to the target root and
// slash-separated. Creation order follows declaration order.
type Entry struct {
	Path string `yaml:"path" json:"path"`
	Kind string `yaml:"kind" json:"kind"`

	// Mode is an octal permission string like "0755". Empty means the
	// kind's default (0755 for directories, 0644 for files).
	Mode string `yaml:"mode,omitempty" json:"mode,omitempty"`

	// Content is written only when a file entry is first created. Existing
	// files are never touched.
	Content string `yaml:"content,omitempty" json:"content,omitempty"`

	// Target is the symlink destination, relative to the link's directory.
	Target string `yaml:"target,omitempty" json:"target,omitempty"`
}

// Entry kind constants for the kind discriminator field.
const (
	KindDirectory = "directory"
	KindFile      = "file"
	KindSymlink   = "symlink"
)

// ValidKinds contains all valid entry kind values.
var ValidKinds = []string{
	KindDirectory,
	KindFile,
	KindSymlink,
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool { return e.Kind == KindDirectory }
