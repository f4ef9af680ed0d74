package registry

import (
	"strings"
	"testing"
)

func TestDefault_lookups(t *testing.T) {
	r := Default()
	tests := []struct {
		ext  string
		want Category
	}{
		{".pdf", CategoryDocument},
		{".docx", CategoryDocument},
		{".mp3", CategoryAudio},
		{".jpg", CategoryImage},
		{".mkv", CategoryVideo},
		{".txt", CategoryText},
	}
	for _, tt := range tests {
		got, ok := r.Lookup(tt.ext)
		if !ok {
			t.Errorf("Lookup(%q): not found", tt.ext)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestLookup_normalizes(t *testing.T) {
	r := Default()
	for _, ext := range []string{"PDF", ".PDF", "pdf", " .pdf "} {
		if cat, ok := r.Lookup(ext); !ok || cat != CategoryDocument {
			t.Errorf("Lookup(%q) = (%q, %v), want (document, true)", ext, cat, ok)
		}
	}
}

func TestLookup_unknown(t *testing.T) {
	r := Default()
	if _, ok := r.Lookup(".xyz"); ok {
		t.Error("Lookup(.xyz): expected not found")
	}
	if r.Contains("") {
		t.Error("Contains(\"\"): expected false")
	}
}

func TestNew_rejectsOverlap(t *testing.T) {
	_, err := New(map[Category][]string{
		CategoryText:     {".txt", ".md"},
		CategoryDocument: {".pdf", ".md"},
	})
	if err == nil {
		t.Fatal("expected error for overlapping extension")
	}
	if !strings.Contains(err.Error(), ".md") {
		t.Errorf("error %q should name the overlapping extension", err)
	}
}

func TestNew_rejectsUnknownCategory(t *testing.T) {
	_, err := New(map[Category][]string{Category("archive"): {".zip"}})
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestNew_rejectsEmptyExtension(t *testing.T) {
	_, err := New(map[Category][]string{CategoryText: {""}})
	if err == nil {
		t.Fatal("expected error for empty extension")
	}
}

func TestNew_duplicateWithinCategory(t *testing.T) {
	r, err := New(map[Category][]string{CategoryText: {".txt", ".TXT"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := r.CategoryExtensions(CategoryText); len(got) != 1 || got[0] != ".txt" {
		t.Errorf("CategoryExtensions = %v, want [.txt]", got)
	}
}

func TestDefault_setsAreDisjoint(t *testing.T) {
	r := Default()
	seen := make(map[string]Category)
	for _, cat := range r.Categories() {
		for _, ext := range r.CategoryExtensions(cat) {
			if prev, dup := seen[ext]; dup {
				t.Errorf("extension %q in both %q and %q", ext, prev, cat)
			}
			seen[ext] = cat
		}
	}
}

func TestExtensions_sorted(t *testing.T) {
	r := Default()
	exts := r.Extensions()
	if len(exts) == 0 {
		t.Fatal("no extensions")
	}
	for i := 1; i < len(exts); i++ {
		if exts[i-1] >= exts[i] {
			t.Errorf("extensions not sorted at %d: %q >= %q", i, exts[i-1], exts[i])
		}
	}
}
