package extract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hikidasu/hikidasu/internal/registry"
)

// extractDocument converts the document at path to markdown. PDF goes
// through the page-layout converter; office formats go through the
// format-specific converters below.
func (e *Extractor) extractDocument(path string) (*Result, error) {
	ext := registry.Normalize(filepath.Ext(path))
	if ext == ".pdf" {
		md, err := e.convertPDF(path)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: KindDocument, Text: md}, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	var md string
	switch ext {
	case ".docx", ".odt", ".rtf":
		md, err = docxToMarkdown(content)
	case ".xlsx":
		md, err = excelToMarkdown(content)
	case ".pptx":
		md, err = pptxToMarkdown(content)
	case ".odp":
		md, err = odpToMarkdown(content)
	case ".ods":
		md, err = odsToMarkdown(content)
	default:
		// Only reachable when the registry's document set is widened without
		// adding a converter here.
		err = fmt.Errorf("%w: no document converter for %q", ErrUnsupported, ext)
	}
	if err != nil {
		return nil, err
	}
	return &Result{Kind: KindDocument, Text: md}, nil
}
