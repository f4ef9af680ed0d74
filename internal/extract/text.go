package extract

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// extractText reads path fully and returns its content unchanged. The file
// must be valid UTF-8; unlike the lenient replacement some pipelines do, a
// non-UTF-8 file is a failure here so callers never index mangled bytes.
func extractText(path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("read text file %s: not valid UTF-8", path)
	}
	return &Result{Kind: KindText, Text: string(content)}, nil
}
