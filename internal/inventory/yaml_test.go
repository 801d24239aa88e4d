package inventory

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const validYAML = `version: "1.0.0"
links:
  - short: a1
    href: https://one.example
  - short: b2
    href: https://two.example
`

func TestParseYAML_Valid(t *testing.T) {
	inv, err := ParseYAML([]byte(validYAML), "inv.yaml")
	if err != nil {
		t.Fatalf("ParseYAML error: %v", err)
	}
	if len(inv) != 2 {
		t.Fatalf("got %d entries, want 2", len(inv))
	}
	if inv["a1"] != "https://one.example" {
		t.Errorf("inv[a1] = %q", inv["a1"])
	}
}

func TestParseYAML_NoVersion(t *testing.T) {
	data := "links:\n  - short: a1\n    href: https://one.example\n"
	inv, err := ParseYAML([]byte(data), "inv.yaml")
	if err != nil {
		t.Fatalf("ParseYAML error: %v", err)
	}
	if len(inv) != 1 {
		t.Fatalf("got %d entries, want 1", len(inv))
	}
}

func TestParseYAML_DuplicateTokenKeepsLast(t *testing.T) {
	data := `links:
  - short: a1
    href: https://old.example
  - short: a1
    href: https://new.example
`
	inv, err := ParseYAML([]byte(data), "inv.yaml")
	if err != nil {
		t.Fatalf("ParseYAML error: %v", err)
	}
	if inv["a1"] != "https://new.example" {
		t.Errorf("inv[a1] = %q, want last entry to win", inv["a1"])
	}
}

func TestParseYAML_UnsupportedMajor(t *testing.T) {
	data := "version: \"2.0.0\"\nlinks: []\n"
	_, err := ParseYAML([]byte(data), "inv.yaml")
	if err == nil {
		t.Fatal("expected error for format version 2.0.0, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported format version") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseYAML_SchemaViolation(t *testing.T) {
	data := "links:\n  - short: a1\n"
	_, err := ParseYAML([]byte(data), "inv.yaml")
	if err == nil {
		t.Fatal("expected error for entry missing href, got nil")
	}
	if !strings.Contains(err.Error(), "invalid") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	inv := Inventory{"b2": "https://two.example", "a1": "https://one.example"}

	if err := WriteYAML(fsys, "inv.yaml", inv); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	got, err := Load(fsys, "inv.yaml")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != len(inv) {
		t.Fatalf("round trip lost entries: %v", got)
	}
	for short, href := range inv {
		if got[short] != href {
			t.Errorf("inv[%q] = %q, want %q", short, got[short], href)
		}
	}

	// Entries come out sorted by token.
	data, _ := afero.ReadFile(fsys, "inv.yaml")
	if strings.Index(string(data), "a1") > strings.Index(string(data), "b2") {
		t.Errorf("entries not sorted by token:\n%s", data)
	}
}

func TestValidate_ReportsPath(t *testing.T) {
	data := "links:\n  - short: \"\"\n    href: https://one.example\n"
	result, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result for empty short token")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	if !strings.Contains(result.Issues[0].Path, "/links/0") {
		t.Errorf("issue path = %q, want it under /links/0", result.Issues[0].Path)
	}
}

func TestValidate_ValidDocument(t *testing.T) {
	result, err := Validate([]byte(validYAML))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid result, got issues: %s", result.Format())
	}
}
