package restore

import (
	"testing"

	"github.com/relink-tools/relink/internal/inventory"
)

func TestApply_RestoresLink(t *testing.T) {
	e := NewEngine(inventory.Inventory{"abc123": "https://example.com/full-path"})

	got, n := e.Apply("See [here](abc123) for details.")
	want := "See [here](https://example.com/full-path) for details."
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
	if n != 1 {
		t.Errorf("restored %d links, want 1", n)
	}
}

func TestApply_LabelPreserved(t *testing.T) {
	e := NewEngine(inventory.Inventory{"t1": "https://one.example"})

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty label",
			content: "[](t1)",
			want:    "[](https://one.example)",
		},
		{
			name:    "label with punctuation",
			content: "[the `docs` (v2)!](t1)",
			want:    "[the `docs` (v2)!](https://one.example)",
		},
		{
			name:    "two links on one line",
			content: "[a](x) and [b](t1)",
			want:    "[a](x) and [b](https://one.example)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := e.Apply(tt.content)
			if got != tt.want {
				t.Errorf("Apply = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_PlainProseUntouched(t *testing.T) {
	e := NewEngine(inventory.Inventory{"t1": "https://one.example"})

	content := "The token t1 in prose, (t1) in parens, [t1] in brackets."
	got, n := e.Apply(content)
	if got != content {
		t.Errorf("Apply = %q, want unchanged", got)
	}
	if n != 0 {
		t.Errorf("restored %d links, want 0", n)
	}
}

func TestApply_TargetMustEqualToken(t *testing.T) {
	e := NewEngine(inventory.Inventory{"t1": "https://one.example"})

	content := "[a](t12) [b](xt1) [c](t1 )"
	got, _ := e.Apply(content)
	if got != content {
		t.Errorf("Apply = %q, want unchanged", got)
	}
}

func TestApply_TokenWithMetacharacters(t *testing.T) {
	e := NewEngine(inventory.Inventory{"a.b+c?": "https://meta.example"})

	got, _ := e.Apply("[x](a.b+c?) but not [y](aXb+c?)")
	want := "[x](https://meta.example) but not [y](aXb+c?)"
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}

func TestApply_HrefInsertedLiterally(t *testing.T) {
	// Hrefs containing $ must not be expanded as replacement templates.
	e := NewEngine(inventory.Inventory{"t1": "https://example.com/a$1b"})

	got, _ := e.Apply("[x](t1)")
	want := "[x](https://example.com/a$1b)"
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}

func TestApply_MultipleOccurrences(t *testing.T) {
	e := NewEngine(inventory.Inventory{"t1": "https://one.example"})

	got, n := e.Apply("[a](t1)\n[b](t1)\n")
	want := "[a](https://one.example)\n[b](https://one.example)\n"
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
	if n != 2 {
		t.Errorf("restored %d links, want 2", n)
	}
}

func TestApply_Idempotent(t *testing.T) {
	e := NewEngine(inventory.Inventory{
		"t1": "https://one.example",
		"t2": "https://two.example",
	})

	once, _ := e.Apply("[a](t1) then [b](t2) then plain t1")
	twice, n := e.Apply(once)
	if twice != once {
		t.Errorf("second pass changed content: %q -> %q", once, twice)
	}
	if n != 0 {
		t.Errorf("second pass restored %d links, want 0", n)
	}
}

func TestApply_EmptyInventory(t *testing.T) {
	e := NewEngine(inventory.Inventory{})

	content := "[a](t1)"
	got, n := e.Apply(content)
	if got != content || n != 0 {
		t.Errorf("Apply = %q (%d), want unchanged", got, n)
	}
}
