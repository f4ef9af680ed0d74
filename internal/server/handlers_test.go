package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hikidasu/hikidasu/internal/config"
	"github.com/hikidasu/hikidasu/internal/extract"
	"github.com/hikidasu/hikidasu/internal/models"
	"go.uber.org/zap"
)

// stubProber returns canned output so media requests never shell out.
type stubProber struct {
	out *extract.ProbeOutput
	err error
}

func (p *stubProber) Probe(_ context.Context, _ string) (*extract.ProbeOutput, error) {
	return p.out, p.err
}

func newTestServer(opts ...extract.ExtractorOption) *Server {
	e := extract.NewExtractor(opts...)
	cfg := &config.ServerConfig{Host: "localhost", Port: 0}
	return NewServer(e, cfg, zap.NewNop())
}

func postExtract(t *testing.T, s *Server, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleExtract_text(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("hello"), 0600); err != nil {
		t.Fatal(err)
	}

	rec := postExtract(t, newTestServer(), &models.ExtractRequest{Path: path})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp models.ExtractResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Kind != extract.KindText || resp.Text != "hello" {
		t.Errorf("response = %+v", resp)
	}
	if resp.ID == "" {
		t.Error("response should carry a result ID")
	}
}

func TestHandleExtract_media(t *testing.T) {
	prober := &stubProber{out: &extract.ProbeOutput{Streams: []extract.ProbeStream{
		{Title: "Song", Duration: "12.5"},
	}}}
	rec := postExtract(t, newTestServer(extract.WithProber(prober)), &models.ExtractRequest{Path: "/media/song.mp3"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp models.ExtractResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Kind != extract.KindAudio || resp.Audio["title"] != "Song" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Video != nil {
		t.Error("audio-only result should carry no video half")
	}
}

func TestHandleExtract_unsupported(t *testing.T) {
	rec := postExtract(t, newTestServer(), &models.ExtractRequest{Path: "/tmp/file.xyz"})
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", rec.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Reason != extract.ReasonUnsupported {
		t.Errorf("reason = %q, want %q", resp.Reason, extract.ReasonUnsupported)
	}
}

func TestHandleExtract_parseFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0600); err != nil {
		t.Fatal(err)
	}

	rec := postExtract(t, newTestServer(), &models.ExtractRequest{Path: path})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Reason != extract.ReasonParseFailed {
		t.Errorf("reason = %q, want %q", resp.Reason, extract.ReasonParseFailed)
	}
}

func TestHandleExtract_badRequest(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = postExtract(t, s, &models.ExtractRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty path: status = %d, want 400", rec.Code)
	}
}

func TestHandleFormats(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/formats", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp models.FormatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Categories["document"]) == 0 || len(resp.Categories["text"]) == 0 {
		t.Errorf("categories = %+v", resp.Categories)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
