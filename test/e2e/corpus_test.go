package e2e

import (
	"strings"
	"testing"
)

func TestBuildCorpus(t *testing.T) {
	docs := BuildCorpus(40)
	if len(docs) != 40 {
		t.Fatalf("got %d documents, want 40", len(docs))
	}
	if !UniqueSignatures(docs) {
		t.Error("corpus signatures are not unique")
	}
	exts := make(map[string]bool)
	for _, d := range docs {
		if !strings.Contains(d.Text(), d.Signature) {
			t.Errorf("document %s does not contain its own signature", d.ID)
		}
		exts[d.Ext] = true
	}
	for _, ext := range FixtureExtensions {
		if !exts[ext] {
			t.Errorf("no corpus document uses %s", ext)
		}
	}
}
