// Package extract extracts text content and metadata from files by
// dispatching on file extension to a format-specific backend.
package extract

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hikidasu/hikidasu/internal/registry"
	"go.uber.org/zap"
)

// Kind identifies the shape of a Result.
type Kind string

const (
	// KindText is verbatim plain-text content.
	KindText Kind = "text"
	// KindDocument is document content converted to markdown.
	KindDocument Kind = "document"
	// KindAudio is audio stream metadata (Audio only).
	KindAudio Kind = "audio"
	// KindVideo is video stream metadata (Video and Audio).
	KindVideo Kind = "video"
	// KindImage is EXIF image metadata (Image only).
	KindImage Kind = "image"
)

// Metadata is a flat field-to-value mapping. Fields with no source value
// are present with an empty string, so callers can rely on the key set.
type Metadata map[string]string

// Result is the backend-specific output of one extraction. Exactly the
// fields implied by Kind are set; the rest are zero. Each Result is built
// fresh per call and owned by the caller.
type Result struct {
	Kind  Kind     `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Audio Metadata `json:"audio,omitempty"`
	Video Metadata `json:"video,omitempty"`
	Image Metadata `json:"image,omitempty"`
}

// Extractor routes files to format backends. It keeps no state between
// calls; a single Extractor is safe for concurrent use.
type Extractor struct {
	registry *registry.Registry
	prober   Prober
	margin   float64
	logger   *zap.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithRegistry sets the extension registry. Defaults to registry.Default().
func WithRegistry(r *registry.Registry) ExtractorOption {
	return func(e *Extractor) { e.registry = r }
}

// WithProber sets the media stream prober. Defaults to ffprobe on PATH.
func WithProber(p Prober) ExtractorOption {
	return func(e *Extractor) { e.prober = p }
}

// WithMargin sets the page margin (in points) clipped from each page edge
// during PDF conversion. Defaults to zero: all page text is kept.
func WithMargin(margin float64) ExtractorOption {
	return func(e *Extractor) { e.margin = margin }
}

// WithLogger sets the logger used by TryExtract for suppressed failures.
func WithLogger(logger *zap.Logger) ExtractorOption {
	return func(e *Extractor) { e.logger = logger }
}

// NewExtractor returns an Extractor with the default registry and ffprobe
// prober, adjusted by opts.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		registry: registry.Default(),
		prober:   &FFProbe{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the extension registry in use.
func (e *Extractor) Registry() *registry.Registry { return e.registry }

// Extract resolves the extension of path, routes to the owning backend and
// returns its result. Unregistered extensions yield ErrUnsupported; a
// password-protected document yields ErrPasswordProtected; other failures
// are wrapped with backend context. Use Reason to classify the error.
func (e *Extractor) Extract(ctx context.Context, path string) (*Result, error) {
	ext := filepath.Ext(path)
	cat, ok := e.registry.Lookup(ext)
	if !ok {
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupported, ext)
	}
	switch cat {
	case registry.CategoryDocument:
		return e.extractDocument(path)
	case registry.CategoryAudio, registry.CategoryVideo:
		return e.extractStreams(ctx, path)
	case registry.CategoryImage:
		return e.extractImage(path)
	case registry.CategoryText:
		return extractText(path)
	default:
		// Unreachable while registry.New keeps categories closed; kept as a
		// typed failure so a future category cannot silently fall through.
		return nil, fmt.Errorf("%w: category %q has no backend", ErrUnsupported, cat)
	}
}

// TryExtract is the tolerant variant: any failure, including unsupported
// extensions, collapses to a nil result. Failures are logged at debug level
// only. Intended for pipeline callers that treat unparsable and unsupported
// files the same way.
func (e *Extractor) TryExtract(ctx context.Context, path string) *Result {
	res, err := e.Extract(ctx, path)
	if err != nil {
		e.logger.Debug("extraction suppressed",
			zap.String("path", path),
			zap.String("reason", string(Reason(err))),
			zap.Error(err),
		)
		return nil
	}
	return res
}
