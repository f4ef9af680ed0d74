package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// excelToMarkdown converts .xlsx bytes to markdown: one "## <sheet>" section
// per non-empty sheet, rows rendered as a markdown table with the first row
// as the header.
func excelToMarkdown(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("open Excel: %w", err)
	}
	defer f.Close()

	var sections []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("get rows for sheet %q: %w", sheet, err)
		}
		table := rowsToMarkdownTable(rows)
		if table == "" {
			continue
		}
		sections = append(sections, "## "+sheet+"\n\n"+table)
	}
	return strings.Join(sections, "\n\n"), nil
}

// rowsToMarkdownTable renders rows as a markdown table, padding short rows
// to the widest row so every line has the same column count. Empty input
// yields "".
func rowsToMarkdownTable(rows [][]string) string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return ""
	}
	var b strings.Builder
	for i, row := range rows {
		b.WriteString("| ")
		for col := 0; col < width; col++ {
			if col > 0 {
				b.WriteString(" | ")
			}
			if col < len(row) {
				b.WriteString(strings.TrimSpace(row[col]))
			}
		}
		b.WriteString(" |\n")
		if i == 0 {
			b.WriteString("|" + strings.Repeat(" --- |", width) + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}
