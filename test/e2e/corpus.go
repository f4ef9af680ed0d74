package e2e

import (
	"fmt"
	"strings"
)

// CorpusDocument is one entry in the E2E extraction corpus. Signature is a
// phrase unique to the document, used to assert the right content came back.
type CorpusDocument struct {
	ID        string
	Ext       string
	Title     string
	Body      string
	Signature string
}

// Text returns the full fixture text of the document.
func (d *CorpusDocument) Text() string {
	return d.Title + "\n\n" + d.Body
}

// Filename returns the corpus document's file name.
func (d *CorpusDocument) Filename() string {
	return d.ID + d.Ext
}

var corpusTopics = []struct {
	title string
	body  string
}{
	{"Kubernetes deployment guide", "Deploying services with rolling updates and health checks."},
	{"Grafana dashboard setup", "Visualizing Prometheus metrics with custom panels."},
	{"PostgreSQL tuning notes", "Index selection and query planner hints for large tables."},
	{"Team offsite agenda", "Schedule and discussion topics for the quarterly offsite."},
	{"Release checklist", "Steps required before tagging a production release."},
	{"Incident postmortem", "Timeline and root cause of the March outage."},
	{"API style guide", "Naming conventions and error shapes for public endpoints."},
	{"Onboarding handbook", "First-week setup tasks for new engineers."},
}

// BuildCorpus returns n corpus documents cycling through the fixture
// extensions and topics. Each document carries a unique signature phrase
// embedded in its body.
func BuildCorpus(n int) []CorpusDocument {
	docs := make([]CorpusDocument, 0, n)
	for i := 0; i < n; i++ {
		topic := corpusTopics[i%len(corpusTopics)]
		sig := fmt.Sprintf("signature-phrase-%04d", i)
		docs = append(docs, CorpusDocument{
			ID:        fmt.Sprintf("doc-%04d", i),
			Ext:       FixtureExtensions[i%len(FixtureExtensions)],
			Title:     topic.title,
			Body:      topic.body + " " + sig,
			Signature: sig,
		})
	}
	return docs
}

// UniqueSignatures reports whether every document's signature appears in no
// other document's text.
func UniqueSignatures(docs []CorpusDocument) bool {
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if seen[d.Signature] {
			return false
		}
		seen[d.Signature] = true
	}
	for _, d := range docs {
		for _, other := range docs {
			if other.ID != d.ID && strings.Contains(other.Text(), d.Signature) {
				return false
			}
		}
	}
	return true
}
