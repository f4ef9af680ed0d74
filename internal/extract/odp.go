package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// odContentPath is the path to the main content inside OpenDocument zips.
const odContentPath = "content.xml"

// odTextTags match OpenDocument text elements (with optional attributes).
// Separate patterns keep opening and closing tags paired (e.g. <text:p>
// never closes a <text:page> match).
var (
	odTextH    = regexp.MustCompile(`<text:h[^>]*>([^<]*)</text:h>`)
	odTextP    = regexp.MustCompile(`<text:p[^>]*>([^<]*)</text:p>`)
	odTextSpan = regexp.MustCompile(`<text:span[^>]*>([^<]*)</text:span>`)
)

// odContent returns content.xml from an OpenDocument zip.
func odContent(content []byte, format string) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("convert %s: not a zip: %w", format, err)
	}
	contentXML, err := zipFileContent(zr, odContentPath)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", format, err)
	}
	if contentXML == nil {
		return "", fmt.Errorf("convert %s: %s not found", format, odContentPath)
	}
	return string(contentXML), nil
}

// odpToMarkdown converts .odp bytes to markdown. ODP is a ZIP containing
// content.xml (OpenDocument). text:h elements become headings; text:p and
// text:span elements become blocks.
func odpToMarkdown(content []byte) (string, error) {
	s, err := odContent(content, "ODP")
	if err != nil {
		return "", err
	}
	var blocks []string
	appendBlocks := func(prefix string, parts [][]string) {
		for _, p := range parts {
			if t := strings.TrimSpace(p[1]); t != "" {
				blocks = append(blocks, prefix+t)
			}
		}
	}
	appendBlocks("## ", odTextH.FindAllStringSubmatch(s, -1))
	appendBlocks("", odTextP.FindAllStringSubmatch(s, -1))
	appendBlocks("", odTextSpan.FindAllStringSubmatch(s, -1))
	return strings.Join(blocks, "\n\n"), nil
}
