// Package registry maps file extensions to extraction backend categories.
package registry

import (
	"fmt"
	"sort"
	"strings"
)

// Category identifies the extraction backend responsible for a file extension.
type Category string

const (
	// CategoryDocument covers PDF and office formats converted to markdown.
	CategoryDocument Category = "document"
	// CategoryAudio covers audio containers probed for stream metadata.
	CategoryAudio Category = "audio"
	// CategoryImage covers image formats read for EXIF metadata.
	CategoryImage Category = "image"
	// CategoryVideo covers video containers probed for stream metadata.
	CategoryVideo Category = "video"
	// CategoryText covers plain UTF-8 text formats returned verbatim.
	CategoryText Category = "text"
)

// categories is the fixed set of valid categories, in dispatch precedence order.
var categories = []Category{CategoryDocument, CategoryAudio, CategoryImage, CategoryVideo, CategoryText}

// Registry holds the extension-to-category mapping. It is built once and
// read-only thereafter; lookups are safe for concurrent use.
type Registry struct {
	byExt map[string]Category
	byCat map[Category][]string
}

// New builds a registry from per-category extension lists. Extensions are
// normalized to lowercase with a leading dot. An extension listed under two
// categories is rejected: overlapping sets would make dispatch ambiguous.
func New(sets map[Category][]string) (*Registry, error) {
	r := &Registry{
		byExt: make(map[string]Category),
		byCat: make(map[Category][]string),
	}
	for cat, exts := range sets {
		if !validCategory(cat) {
			return nil, fmt.Errorf("registry: unknown category %q", cat)
		}
		for _, ext := range exts {
			norm := Normalize(ext)
			if norm == "." || norm == "" {
				return nil, fmt.Errorf("registry: empty extension in category %q", cat)
			}
			if prev, ok := r.byExt[norm]; ok {
				if prev == cat {
					continue
				}
				return nil, fmt.Errorf("registry: extension %q registered for both %q and %q", norm, prev, cat)
			}
			r.byExt[norm] = cat
			r.byCat[cat] = append(r.byCat[cat], norm)
		}
	}
	for cat := range r.byCat {
		sort.Strings(r.byCat[cat])
	}
	return r, nil
}

// Default returns a registry with the stock extension sets.
func Default() *Registry {
	r, err := New(DefaultSets())
	if err != nil {
		// DefaultSets is static and disjoint; a failure here is a programming error.
		panic(err)
	}
	return r
}

// Normalize lowercases ext and ensures a leading dot, so ".TXT", "txt" and
// ".txt" all resolve to the same entry.
func Normalize(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Lookup returns the category owning ext, if any.
func (r *Registry) Lookup(ext string) (Category, bool) {
	cat, ok := r.byExt[Normalize(ext)]
	return cat, ok
}

// Contains reports whether ext belongs to any category.
func (r *Registry) Contains(ext string) bool {
	_, ok := r.Lookup(ext)
	return ok
}

// Extensions returns all registered extensions, sorted.
func (r *Registry) Extensions() []string {
	all := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		all = append(all, ext)
	}
	sort.Strings(all)
	return all
}

// CategoryExtensions returns the extensions registered under cat, sorted.
// The returned slice is a copy.
func (r *Registry) CategoryExtensions(cat Category) []string {
	exts := r.byCat[cat]
	out := make([]string, len(exts))
	copy(out, exts)
	return out
}

// Categories returns the categories that have at least one extension,
// in dispatch precedence order.
func (r *Registry) Categories() []Category {
	out := make([]Category, 0, len(r.byCat))
	for _, cat := range categories {
		if len(r.byCat[cat]) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

func validCategory(cat Category) bool {
	for _, c := range categories {
		if c == cat {
			return true
		}
	}
	return false
}
