// Package cli provides CLI output utilities for hikidasu.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/hikidasu/hikidasu/internal/extract"
	"github.com/hikidasu/hikidasu/internal/models"
)

// OutputFormat is the format for extraction result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
	// OutputCompact is the extracted text/metadata only, no framing.
	OutputCompact OutputFormat = "compact"
)

// WriteResult writes an extraction result to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteResult(w io.Writer, resp *models.ExtractResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case OutputCompact:
		writeResultCompact(w, resp)
		return nil
	default:
		writeResultText(w, resp)
		return nil
	}
}

// textPreviewLimit caps the content block in text output. Compact and JSON
// output always carry the full content.
const textPreviewLimit = 2000

func writeResultText(w io.Writer, resp *models.ExtractResponse) {
	fmt.Fprintf(w, "path:  %s\n", resp.Path)
	fmt.Fprintf(w, "kind:  %s\n", resp.Kind)
	switch resp.Kind {
	case extract.KindText, extract.KindDocument:
		fmt.Fprintf(w, "\n%s\n", Truncate(resp.Text, textPreviewLimit))
	case extract.KindAudio:
		writeMetadata(w, "audio", resp.Audio)
	case extract.KindVideo:
		writeMetadata(w, "video", resp.Video)
		writeMetadata(w, "audio", resp.Audio)
	case extract.KindImage:
		writeMetadata(w, "image", resp.Image)
	}
}

func writeResultCompact(w io.Writer, resp *models.ExtractResponse) {
	switch resp.Kind {
	case extract.KindText, extract.KindDocument:
		fmt.Fprintln(w, resp.Text)
	default:
		for _, meta := range []extract.Metadata{resp.Video, resp.Audio, resp.Image} {
			for _, k := range sortedKeys(meta) {
				fmt.Fprintf(w, "%s=%s\n", k, meta[k])
			}
		}
	}
}

// writeMetadata prints one metadata half with aligned keys, sorted for
// stable output.
func writeMetadata(w io.Writer, label string, meta extract.Metadata) {
	if meta == nil {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", label)
	keys := sortedKeys(meta)
	width := 0
	for _, k := range keys {
		if len(k) > width {
			width = len(k)
		}
	}
	for _, k := range keys {
		fmt.Fprintf(w, "  %-*s  %s\n", width, k, meta[k])
	}
}

func sortedKeys(meta extract.Metadata) []string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Truncate truncates s to maxLen and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
