package layout

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Parse unmarshals layout YAML bytes. It checks YAML well-formedness only;
// run Validate for schema and structural checks.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	return &l, nil
}

// ParseFile reads and parses a layout file at the given path.
func ParseFile(path string) (*Layout, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing layout %s: %w", path, err)
	}
	return l, nil
}

// FileMode returns the entry's permission bits: the parsed Mode field when
// set, otherwise the default for the entry's kind.
func (e Entry) FileMode() (os.FileMode, error) {
	if e.Mode == "" {
		if e.IsDir() {
			return 0755, nil
		}
		return 0644, nil
	}
	// Modes are always octal: 0755, 0o755, and 755 all mean the same bits.
	u, err := strconv.ParseUint(strings.TrimPrefix(e.Mode, "0o"), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing mode %q for %s: %w", e.Mode, e.Path, err)
	}
	return os.FileMode(u), nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
