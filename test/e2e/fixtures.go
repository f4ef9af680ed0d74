// Package e2e provides end-to-end tests; this file builds minimal on-disk
// files for the supported document and text formats.
package e2e

import (
	"archive/zip"
	"bytes"
	"os"

	"github.com/xuri/excelize/v2"
)

// FixtureExtensions is the list of file extensions used in file-based E2E
// tests. Covers plain text (.txt, .md, .rst, .csv, .log), OOXML (.docx,
// .xlsx, .pptx) and OpenDocument (.odp, .ods). The extractor also supports
// .pdf, .odt and .rtf; PDF fixtures live with the converter tests in
// internal/extract, and .odt/.rtf share the .docx code path.
var FixtureExtensions = []string{
	".txt", ".md", ".rst", ".csv", ".log",
	".docx", ".xlsx", ".pptx", ".odp", ".ods",
}

// WriteFixture writes a minimal file of the given extension containing the
// given text to path. For plain extensions the content is the raw text; for
// package formats it is a minimal archive holding the text.
func WriteFixture(path, ext, text string) error {
	var content []byte
	switch ext {
	case ".docx":
		content = minimalDocx(text)
	case ".pptx":
		content = minimalPptx(text)
	case ".odp":
		content = minimalOdp(text)
	case ".ods":
		content = minimalOds(text)
	case ".xlsx":
		content = minimalXlsx(text)
	default:
		content = []byte(text)
	}
	return os.WriteFile(path, content, 0644)
}

func minimalDocx(text string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create("word/document.xml")
	_, _ = fw.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`))
	_ = w.Close()
	return buf.Bytes()
}

func minimalPptx(text string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create("ppt/slides/slide1.xml")
	_, _ = fw.Write([]byte(`<p:sld xmlns:p="a" xmlns:a="b"><p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>` + text + `</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`))
	_ = w.Close()
	return buf.Bytes()
}

func minimalOdp(text string) []byte {
	contentXML := `<office:document><office:body><draw:page><draw:text-box><text:p>` + text + `</text:p></draw:text-box></draw:page></office:body></office:document>`
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create("content.xml")
	_, _ = fw.Write([]byte(contentXML))
	_ = w.Close()
	return buf.Bytes()
}

func minimalOds(text string) []byte {
	contentXML := `<office:document><office:body><table:table><table:table-row><table:table-cell><text:p>` + text + `</text:p></table:table-cell></table:table-row></table:table></office:body></office:document>`
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create("content.xml")
	_, _ = fw.Write([]byte(contentXML))
	_ = w.Close()
	return buf.Bytes()
}

func minimalXlsx(text string) []byte {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", text)
	var buf bytes.Buffer
	_, _ = f.WriteTo(&buf)
	return buf.Bytes()
}
