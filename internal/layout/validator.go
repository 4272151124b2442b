package layout

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/skaf-labs/skaf/internal/safety"
)

//go:embed schema/layout.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a layout validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/entries/3/kind")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed; empty for structural issues
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("layout.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("layout.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate validates raw layout YAML bytes against the JSON schema and then
// applies the structural rules the schema cannot express. The error return is
// for I/O or schema compilation failures; validation issues are returned in
// the ValidationResult.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON-compatible types.
	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		validationErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		return &ValidationResult{Valid: false, Issues: extractIssues(validationErr)}, nil
	}

	// Schema passed; the document unmarshals cleanly into a Layout.
	l, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if issues := structuralIssues(l); len(issues) > 0 {
		return &ValidationResult{Valid: false, Issues: issues}, nil
	}
	return &ValidationResult{Valid: true}, nil
}

// ValidateFile reads a file and validates it as a layout.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// structuralIssues checks the rules that need to see the whole document:
// clean relative paths, no duplicates, no entry nested under a file, and
// every file's parent directory declared (explicitly or implicitly) before
// the file itself.
func structuralIssues(l *Layout) []ValidationIssue {
	var issues []ValidationIssue

	// declared records explicit entries seen so far, keyed by slash path.
	// implied records ancestors of earlier entries, which must end up as
	// directories.
	declared := make(map[string]string, len(l.Entries))
	implied := make(map[string]bool)

	for i, e := range l.Entries {
		loc := fmt.Sprintf("/entries/%d", i)

		if err := safety.ValidateRel(e.Path); err != nil {
			issues = append(issues, ValidationIssue{Path: loc + "/path", Message: err.Error()})
			continue
		}
		if e.Kind == KindSymlink {
			if err := safety.ValidateRel(e.Target); err != nil {
				issues = append(issues, ValidationIssue{
					Path:    loc + "/target",
					Message: fmt.Sprintf("invalid symlink target: %v", err),
				})
			}
		}
		if _, err := e.FileMode(); err != nil {
			issues = append(issues, ValidationIssue{Path: loc + "/mode", Message: err.Error()})
		}

		if prev, ok := declared[e.Path]; ok {
			issues = append(issues, ValidationIssue{
				Path:    loc + "/path",
				Message: fmt.Sprintf("duplicate path %q (already declared as %s)", e.Path, prev),
			})
			continue
		}
		if implied[e.Path] && !e.IsDir() {
			issues = append(issues, ValidationIssue{
				Path:    loc + "/path",
				Message: fmt.Sprintf("%q was already implied as a directory by an earlier entry", e.Path),
			})
			continue
		}

		// Every ancestor must be undeclared (an implied directory) or an
		// explicit directory.
		for p := path.Dir(e.Path); p != "."; p = path.Dir(p) {
			if k, ok := declared[p]; ok && k != KindDirectory {
				issues = append(issues, ValidationIssue{
					Path:    loc + "/path",
					Message: fmt.Sprintf("%q is nested under %q, which is a %s", e.Path, p, k),
				})
				break
			}
			implied[p] = true
		}

		declared[e.Path] = e.Kind
	}

	return issues
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf errors
// with specific property information.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			loc = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{Path: loc, Message: msg, Keyword: keyword})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types so the schema validator handles them consistently.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}
