package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Prober inspects a media file and reports its streams. The production
// implementation shells out to ffprobe; tests inject synthetic output.
type Prober interface {
	Probe(ctx context.Context, path string) (*ProbeOutput, error)
}

// ProbeOutput is the JSON shape produced by the probing tool.
type ProbeOutput struct {
	Streams []ProbeStream `json:"streams"`
}

// ProbeStream is one stream record. Only the fields the media backend maps
// are decoded; everything else in the probe output is ignored.
type ProbeStream struct {
	Title     string `json:"title"`
	Album     string `json:"album"`
	Genre     string `json:"genre"`
	Duration  string `json:"duration"`
	FrameRate string `json:"frame_rate"`
	Director  string `json:"director"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// FFProbe probes media files by running ffprobe as an external process.
type FFProbe struct {
	// Bin is the ffprobe executable; empty means "ffprobe" on PATH.
	Bin string
	// Timeout bounds a single probe run. Zero means no bound beyond ctx.
	Timeout time.Duration
}

// Probe runs ffprobe with JSON stream output and decodes it. All failure
// modes (missing binary, non-zero exit, timeout, bad JSON) are classified
// ErrProbe.
func (f *FFProbe) Probe(ctx context.Context, path string) (*ProbeOutput, error) {
	bin := f.Bin
	if bin == "" {
		bin = "ffprobe"
	}
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, bin, "-v", "quiet", "-print_format", "json", "-show_streams", path)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: run %s: %v", ErrProbe, bin, err)
	}
	var probe ProbeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return nil, fmt.Errorf("%w: decode %s output: %v", ErrProbe, bin, err)
	}
	return &probe, nil
}

// extractStreams probes path and maps the first stream record to metadata.
// Exactly one stream means an audio-only file: the result carries the four
// audio fields and no video half. More than one stream means the file has a
// video stream: the result carries both halves, with dimensions rendered as
// "<width>x<height>".
func (e *Extractor) extractStreams(ctx context.Context, path string) (*Result, error) {
	probe, err := e.prober.Probe(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(probe.Streams) == 0 {
		return nil, fmt.Errorf("%w: no streams reported for %s", ErrProbe, path)
	}
	s := probe.Streams[0]
	audio := Metadata{
		"title":    s.Title,
		"album":    s.Album,
		"genre":    s.Genre,
		"duration": s.Duration,
	}
	if len(probe.Streams) == 1 {
		return &Result{Kind: KindAudio, Audio: audio}, nil
	}
	video := Metadata{
		"title":      s.Title,
		"frame_rate": s.FrameRate,
		"director":   s.Director,
		"duration":   s.Duration,
		"dimensions": formatDimensions(s.Width, s.Height),
	}
	return &Result{Kind: KindVideo, Video: video, Audio: audio}, nil
}

// formatDimensions renders width and height as "WxH". Either dimension
// missing yields an empty string rather than a half-formed value.
func formatDimensions(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return strconv.Itoa(width) + "x" + strconv.Itoa(height)
}
