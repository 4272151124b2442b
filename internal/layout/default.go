package layout

import (
	_ "embed"
	"fmt"
)

//go:embed layouts/default.yaml
var defaultLayoutBytes []byte

// Default returns the built-in layout used when no layout file is given: the
// brightness controller application skeleton.
func Default() (*Layout, error) {
	result, err := Validate(defaultLayoutBytes)
	if err != nil {
		return nil, fmt.Errorf("validating built-in layout: %w", err)
	}
	if !result.Valid {
		// The embedded layout ships with the binary; reaching this means a
		// broken release.
		return nil, fmt.Errorf("built-in layout is invalid: %d issue(s)", len(result.Issues))
	}
	return Parse(defaultLayoutBytes)
}
