package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// docxDocumentXMLPath is the default path to the main document body inside a .docx zip.
const docxDocumentXMLPath = "word/document.xml"

// contentTypesPath is the path to [Content_Types].xml in OOXML packages.
const contentTypesPath = "[Content_Types].xml"

// docxMainContentType is the content type for the main document in DOCX files.
const docxMainContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"

// wpTag matches a whole <w:p>...</w:p> paragraph, with or without attributes
// (but not <w:pPr> and friends).
var wpTag = regexp.MustCompile(`(?s)<w:p(?:>|\s[^>]*>)(.*?)</w:p>`)

// wtTag matches <w:t>text</w:t> or <w:t xml:space="preserve">text</w:t> (and any other attributes).
var wtTag = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// pStyleTag captures the paragraph style name, used for heading levels.
var pStyleTag = regexp.MustCompile(`<w:pStyle[^>]*w:val="([^"]+)"`)

// headingStyle matches Word's built-in heading style names ("Heading1"..."Heading9").
var headingStyle = regexp.MustCompile(`^[Hh]eading([1-9])$`)

// partNameRe extracts PartName from Override elements in [Content_Types].xml.
var partNameRe = regexp.MustCompile(`<Override[^>]+PartName="([^"]+)"[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"`)

// partNameRe2 handles the case where ContentType appears before PartName.
var partNameRe2 = regexp.MustCompile(`<Override[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"[^>]+PartName="([^"]+)"`)

// findDocxMainDocumentPath finds the main document path from [Content_Types].xml.
// Returns the path without leading slash, or empty string if not found.
func findDocxMainDocumentPath(zr *zip.Reader) string {
	content, err := zipFileContent(zr, contentTypesPath)
	if err != nil || content == nil {
		return ""
	}
	s := string(content)
	// Try both attribute orders
	if matches := partNameRe.FindStringSubmatch(s); len(matches) > 1 {
		return strings.TrimPrefix(matches[1], "/")
	}
	if matches := partNameRe2.FindStringSubmatch(s); len(matches) > 1 {
		return strings.TrimPrefix(matches[1], "/")
	}
	return ""
}

// zipFileContent returns the bytes of the named file inside zr, or nil when
// the file is not present.
func zipFileContent(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		_ = rc.Close()
		return buf.Bytes(), nil
	}
	return nil, nil
}

// docxToMarkdown converts .docx bytes to markdown. DOCX is a ZIP containing
// word/document.xml (OOXML). Each <w:p> paragraph becomes one markdown
// block; paragraphs styled Heading1-9 become markdown headings. Text is
// taken from <w:t> nodes regardless of run attributes, so real-world docs
// (e.g. <w:p w:rsidR="...">) do not yield empty output.
func docxToMarkdown(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("convert DOCX: not a zip: %w", err)
	}

	// Find main document path from [Content_Types].xml, fall back to default
	docPath := findDocxMainDocumentPath(zr)
	if docPath == "" {
		docPath = docxDocumentXMLPath
	}
	docXML, err := zipFileContent(zr, docPath)
	if err != nil {
		return "", fmt.Errorf("convert DOCX: %w", err)
	}
	if docXML == nil {
		return "", fmt.Errorf("convert DOCX: %s not found", docPath)
	}

	var blocks []string
	for _, para := range wpTag.FindAllStringSubmatch(string(docXML), -1) {
		text := joinRuns(wtTag.FindAllStringSubmatch(para[1], -1))
		if text == "" {
			continue
		}
		blocks = append(blocks, docxHeadingPrefix(para[1])+text)
	}
	return strings.Join(blocks, "\n\n"), nil
}

// docxHeadingPrefix maps a paragraph's Heading1-9 style to "#"-prefixes,
// capped at six levels.
func docxHeadingPrefix(paraXML string) string {
	style := pStyleTag.FindStringSubmatch(paraXML)
	if len(style) < 2 {
		return ""
	}
	m := headingStyle.FindStringSubmatch(style[1])
	if len(m) < 2 {
		return ""
	}
	level, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " "
}

// joinRuns joins captured text nodes with single spaces, skipping empties.
func joinRuns(parts [][]string) string {
	var b strings.Builder
	for _, p := range parts {
		t := strings.TrimSpace(p[1])
		if t == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t)
	}
	return b.String()
}
