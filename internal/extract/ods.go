package extract

import (
	"regexp"
	"strings"
)

// odsRowTag matches a whole spreadsheet row; odsCellTag a cell within it.
var (
	odsRowTag  = regexp.MustCompile(`(?s)<table:table-row(?:>|\s[^>]*>)(.*?)</table:table-row>`)
	odsCellTag = regexp.MustCompile(`(?s)<table:table-cell(?:>|\s[^>]*>)(.*?)</table:table-cell>`)
)

// odsToMarkdown converts .ods bytes to markdown. ODS is a ZIP containing
// content.xml (OpenDocument); rows become a markdown table, cell text taken
// from text:p elements.
func odsToMarkdown(content []byte) (string, error) {
	s, err := odContent(content, "ODS")
	if err != nil {
		return "", err
	}
	var rows [][]string
	for _, row := range odsRowTag.FindAllStringSubmatch(s, -1) {
		var cells []string
		for _, cell := range odsCellTag.FindAllStringSubmatch(row[1], -1) {
			var parts []string
			for _, p := range odTextP.FindAllStringSubmatch(cell[1], -1) {
				if t := strings.TrimSpace(p[1]); t != "" {
					parts = append(parts, t)
				}
			}
			cells = append(cells, strings.Join(parts, " "))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rowsToMarkdownTable(rows), nil
}
