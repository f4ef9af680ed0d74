package extract

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// convertPDF opens the PDF at path and renders it as markdown. A document
// that requires a password is refused with ErrPasswordProtected before any
// conversion work.
func (e *Extractor) convertPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return "", fmt.Errorf("open PDF %s: %w", path, ErrPasswordProtected)
		}
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()
	return pdfToMarkdown(r, e.margin)
}

// pdfFragment is one positioned text run on a page.
type pdfFragment struct {
	x, y, w float64
	size    float64
	text    string
}

// pdfLine is a row of fragments sharing a baseline.
type pdfLine struct {
	y         float64
	size      float64
	fragments []pdfFragment
}

// pdfToMarkdown renders every page as markdown blocks. Lines are rebuilt
// from positioned text runs; lines set in a font noticeably larger than the
// page's body size become headings. margin is the band, in points, clipped
// from each page edge; zero keeps all page text.
func pdfToMarkdown(r *pdf.Reader, margin float64) (string, error) {
	var pages []string
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fragments, err := pageFragments(page, margin)
		if err != nil {
			return "", fmt.Errorf("convert page %d: %w", i, err)
		}
		if len(fragments) == 0 {
			continue
		}
		lines := groupLines(fragments)
		block := renderLines(lines, bodyFontSize(fragments))
		if block != "" {
			pages = append(pages, block)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}

// pageFragments collects the page's non-empty text runs, dropping runs that
// fall inside the margin band.
func pageFragments(page pdf.Page, margin float64) ([]pdfFragment, error) {
	content := page.Content()
	var fragments []pdfFragment
	x0, y0, x1, y1, boxOK := mediaBox(page)
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		if margin > 0 && boxOK {
			if t.X < x0+margin || t.X > x1-margin || t.Y < y0+margin || t.Y > y1-margin {
				continue
			}
		}
		fragments = append(fragments, pdfFragment{x: t.X, y: t.Y, w: t.W, size: t.FontSize, text: t.S})
	}
	return fragments, nil
}

// mediaBox resolves the page bounds, walking the Parent chain for inherited
// MediaBox entries.
func mediaBox(page pdf.Page) (x0, y0, x1, y1 float64, ok bool) {
	v := page.V
	for !v.IsNull() {
		box := v.Key("MediaBox")
		if !box.IsNull() && box.Len() == 4 {
			return box.Index(0).Float64(), box.Index(1).Float64(),
				box.Index(2).Float64(), box.Index(3).Float64(), true
		}
		v = v.Key("Parent")
	}
	return 0, 0, 0, 0, false
}

// groupLines buckets fragments into baseline rows (top of page first) and
// orders each row left to right.
func groupLines(fragments []pdfFragment) []pdfLine {
	sorted := make([]pdfFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].y != sorted[j].y {
			return sorted[i].y > sorted[j].y
		}
		return sorted[i].x < sorted[j].x
	})

	var lines []pdfLine
	for _, frag := range sorted {
		if n := len(lines); n > 0 {
			last := &lines[n-1]
			tolerance := math.Max(2, last.size*0.4)
			if math.Abs(last.y-frag.y) <= tolerance {
				last.fragments = append(last.fragments, frag)
				if frag.size > last.size {
					last.size = frag.size
				}
				continue
			}
		}
		lines = append(lines, pdfLine{y: frag.y, size: frag.size, fragments: []pdfFragment{frag}})
	}
	for i := range lines {
		sort.SliceStable(lines[i].fragments, func(a, b int) bool {
			return lines[i].fragments[a].x < lines[i].fragments[b].x
		})
	}
	return lines
}

// bodyFontSize returns the dominant font size on the page, weighted by text
// length, so heading detection has a baseline.
func bodyFontSize(fragments []pdfFragment) float64 {
	weights := make(map[float64]int)
	for _, frag := range fragments {
		weights[roundSize(frag.size)] += len(frag.text)
	}
	var body float64
	var best int
	for size, weight := range weights {
		if weight > best || (weight == best && size < body) {
			body, best = size, weight
		}
	}
	return body
}

func roundSize(size float64) float64 {
	return math.Round(size*2) / 2
}

// renderLines joins a page's lines into markdown: headings for lines set
// clearly above body size, blank lines at paragraph-sized vertical gaps.
func renderLines(lines []pdfLine, bodySize float64) string {
	var b strings.Builder
	var prev *pdfLine
	for i := range lines {
		line := &lines[i]
		text := joinFragments(line.fragments)
		if text == "" {
			continue
		}
		if prev != nil {
			gap := prev.y - line.y
			if gap > math.Max(prev.size, line.size)*1.8 {
				b.WriteString("\n\n")
			} else {
				b.WriteByte('\n')
			}
		}
		b.WriteString(headingPrefix(line.size, bodySize))
		b.WriteString(text)
		prev = line
	}
	return strings.TrimSpace(b.String())
}

// headingPrefix picks a markdown heading level from the line's font size
// relative to the body size.
func headingPrefix(size, bodySize float64) string {
	if bodySize <= 0 {
		return ""
	}
	switch {
	case size >= bodySize*1.6:
		return "# "
	case size >= bodySize*1.25:
		return "## "
	default:
		return ""
	}
}

// joinFragments concatenates a row's runs, inserting a space where the
// horizontal gap between runs indicates a word break the runs themselves
// do not carry.
func joinFragments(fragments []pdfFragment) string {
	var b strings.Builder
	for i, frag := range fragments {
		if i > 0 {
			prev := fragments[i-1]
			gap := frag.x - (prev.x + prev.w)
			if gap > 1 && !strings.HasSuffix(prev.text, " ") && !strings.HasPrefix(frag.text, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(frag.text)
	}
	return strings.TrimSpace(b.String())
}
