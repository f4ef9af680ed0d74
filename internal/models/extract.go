// Package models defines request and response shapes for the extraction API.
package models

import (
	"fmt"
	"time"

	"github.com/hikidasu/hikidasu/internal/extract"
)

// ExtractRequest asks the service to extract one file.
type ExtractRequest struct {
	Path string `json:"path"`
}

// Validate checks the request fields.
func (r *ExtractRequest) Validate() error {
	if r.Path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	return nil
}

// ExtractResponse is the result of a successful extraction.
type ExtractResponse struct {
	ID          string           `json:"id"`
	Path        string           `json:"path"`
	Kind        extract.Kind     `json:"kind"`
	Text        string           `json:"text,omitempty"`
	Audio       extract.Metadata `json:"audio,omitempty"`
	Video       extract.Metadata `json:"video,omitempty"`
	Image       extract.Metadata `json:"image,omitempty"`
	ExtractedAt time.Time        `json:"extracted_at"`
}

// NewExtractResponse wraps an extraction result for the API.
func NewExtractResponse(id, path string, res *extract.Result) *ExtractResponse {
	return &ExtractResponse{
		ID:          id,
		Path:        path,
		Kind:        res.Kind,
		Text:        res.Text,
		Audio:       res.Audio,
		Video:       res.Video,
		Image:       res.Image,
		ExtractedAt: time.Now().UTC(),
	}
}

// ErrorResponse reports an extraction failure with its classified reason,
// so callers can tell "unsupported format" from "parse error" from "tool
// missing".
type ErrorResponse struct {
	Error  string                `json:"error"`
	Reason extract.FailureReason `json:"reason,omitempty"`
}

// FormatsResponse lists the registered extensions per backend category.
type FormatsResponse struct {
	Categories map[string][]string `json:"categories"`
}
