package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_ValidLayout(t *testing.T) {
	result, err := Validate([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid, got issues: %+v", result.Issues)
	}
}

func TestValidate_SchemaIssues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string // substring expected in some issue path or message
	}{
		{
			"missing name",
			"entries:\n  - path: src\n    kind: directory\n",
			"name",
		},
		{
			"bad kind",
			"name: x\nentries:\n  - path: src\n    kind: folder\n",
			"kind",
		},
		{
			"empty entries",
			"name: x\nentries: []\n",
			"entries",
		},
		{
			"symlink without target",
			"name: x\nentries:\n  - path: current\n    kind: symlink\n",
			"target",
		},
		{
			"unknown field",
			"name: x\nentries:\n  - path: src\n    kind: directory\n    owner: root\n",
			"owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if result.Valid {
				t.Fatal("expected validation issues")
			}
			if !issuesMention(result.Issues, tt.want) {
				t.Errorf("no issue mentions %q: %+v", tt.want, result.Issues)
			}
		})
	}
}

func TestValidate_StructuralIssues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			"absolute path",
			"name: x\nentries:\n  - path: /etc/passwd\n    kind: file\n",
			"relative",
		},
		{
			"dotdot escape",
			"name: x\nentries:\n  - path: ../outside\n    kind: file\n",
			"..",
		},
		{
			"duplicate path",
			"name: x\nentries:\n  - path: src\n    kind: directory\n  - path: src\n    kind: directory\n",
			"duplicate",
		},
		{
			"file as parent",
			"name: x\nentries:\n  - path: src\n    kind: file\n  - path: src/app.py\n    kind: file\n",
			"nested under",
		},
		{
			"implied directory redeclared as file",
			"name: x\nentries:\n  - path: src/app.py\n    kind: file\n  - path: src\n    kind: file\n",
			"implied",
		},
		{
			"bad mode",
			"name: x\nentries:\n  - path: f\n    kind: file\n    mode: \"0999\"\n",
			"mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if result.Valid {
				t.Fatal("expected validation issues")
			}
			if !issuesMention(result.Issues, tt.want) {
				t.Errorf("no issue mentions %q: %+v", tt.want, result.Issues)
			}
		})
	}
}

func TestValidate_ImpliedParentsAllowed(t *testing.T) {
	// Parents may be implied rather than declared; declaring one later as a
	// directory is also fine.
	yaml := `name: x
entries:
  - path: src/core/app.py
    kind: file
  - path: src
    kind: directory
`
	result, err := Validate([]byte(yaml))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid, got issues: %+v", result.Issues)
	}
}

func TestValidateFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "layout.yaml")
	if err := os.WriteFile(path, []byte(sampleLayout), 0644); err != nil {
		t.Fatalf("writing layout file: %v", err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid, got issues: %+v", result.Issues)
	}
}

func issuesMention(issues []ValidationIssue, want string) bool {
	for _, issue := range issues {
		if strings.Contains(issue.Path, want) || strings.Contains(issue.Message, want) {
			return true
		}
	}
	return false
}
