package restore

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"

	"github.com/relink-tools/relink/internal/inventory"
)

func TestUnresolvedTargets(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"a.md": "[known](t1) [leftover](zz9) [web](https://example.com) [anchor](#top)",
		"b.md": "[again](zz9) [relative](./other.md) [other](qq8)",
	})
	inv := inventory.Inventory{"t1": "https://one.example"}

	var errOut bytes.Buffer
	got, err := UnresolvedTargets(fsys, inv, Options{}, &errOut)
	if err != nil {
		t.Fatalf("UnresolvedTargets error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d targets, want 2: %v", len(got), got)
	}
	if len(got["zz9"]) != 2 {
		t.Errorf("zz9 files = %v, want both documents", got["zz9"])
	}
	if len(got["qq8"]) != 1 || got["qq8"][0] != "b.md" {
		t.Errorf("qq8 files = %v, want [b.md]", got["qq8"])
	}
}

func TestLooksLikeToken(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"abc123", true},
		{"a.b+c", true},
		{"https://example.com", false},
		{"#section", false},
		{"/abs/path", false},
		{"./rel.md", false},
		{"../up.md", false},
		{"mailto:x@example.com", false},
		{"has space", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := looksLikeToken(tt.target); got != tt.want {
			t.Errorf("looksLikeToken(%q) = %v, want %v", tt.target, got, tt.want)
		}
	}
}
