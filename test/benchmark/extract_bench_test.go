package benchmark

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hikidasu/hikidasu/internal/extract"
	"github.com/hikidasu/hikidasu/test/e2e"
	"go.uber.org/zap"
)

func benchmarkExtract(b *testing.B, ext string) {
	dir := b.TempDir()
	path := filepath.Join(dir, "bench"+ext)
	text := strings.Repeat("benchmark paragraph with a reasonable amount of text. ", 50)
	if err := e2e.WriteFixture(path, ext, text); err != nil {
		b.Fatal(err)
	}
	e := extract.NewExtractor(extract.WithLogger(zap.NewNop()))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Extract(ctx, path); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExtractText(b *testing.B) { benchmarkExtract(b, ".txt") }
func BenchmarkExtractDocx(b *testing.B) { benchmarkExtract(b, ".docx") }
func BenchmarkExtractXlsx(b *testing.B) { benchmarkExtract(b, ".xlsx") }
func BenchmarkExtractPptx(b *testing.B) { benchmarkExtract(b, ".pptx") }
