package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// pptxSlidePathPrefix is the path prefix for slide XML files inside a .pptx zip.
const pptxSlidePathPrefix = "ppt/slides/slide"

// apTag matches a whole <a:p>...</a:p> paragraph inside a slide text body.
var apTag = regexp.MustCompile(`(?s)<a:p(?:>|\s[^>]*>)(.*?)</a:p>`)

// atTag matches <a:t>text</a:t> or <a:t xml:space="preserve">text</a:t> (and any other attributes).
var atTag = regexp.MustCompile(`<a:t[^>]*>([^<]*)</a:t>`)

// pptxToMarkdown converts .pptx bytes to markdown. PPTX is a ZIP containing
// ppt/slides/slideN.xml (Office Open XML). Slides are emitted in order, each
// as a "## Slide N" section with one block per <a:p> paragraph.
func pptxToMarkdown(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("convert PPTX: not a zip: %w", err)
	}
	var slidePaths []string
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, pptxSlidePathPrefix) && strings.HasSuffix(f.Name, ".xml") {
			slidePaths = append(slidePaths, f.Name)
		}
	}
	sort.Strings(slidePaths)

	var sections []string
	for i, path := range slidePaths {
		slideXML, err := zipFileContent(zr, path)
		if err != nil {
			return "", fmt.Errorf("convert PPTX: %w", err)
		}
		var blocks []string
		for _, para := range apTag.FindAllStringSubmatch(string(slideXML), -1) {
			text := joinRuns(atTag.FindAllStringSubmatch(para[1], -1))
			if text != "" {
				blocks = append(blocks, text)
			}
		}
		if len(blocks) == 0 {
			continue
		}
		sections = append(sections, fmt.Sprintf("## Slide %d\n\n%s", i+1, strings.Join(blocks, "\n\n")))
	}
	return strings.Join(sections, "\n\n"), nil
}
