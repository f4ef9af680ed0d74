package extract

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// tiffEntry is one IFD entry used by buildTIFF. Values must fit inline
// (4 bytes): SHORT counts of 1, or ASCII up to 4 bytes including NUL.
type tiffEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value [4]byte
}

// buildTIFF assembles a minimal little-endian TIFF with a single IFD.
// Entries must be in ascending tag order.
func buildTIFF(entries []tiffEntry) []byte {
	var buf []byte
	le := binary.LittleEndian
	buf = append(buf, 'I', 'I', 0x2A, 0x00)
	buf = le.AppendUint32(buf, 8) // IFD0 offset
	buf = le.AppendUint16(buf, uint16(len(entries)))
	for _, e := range entries {
		buf = le.AppendUint16(buf, e.tag)
		buf = le.AppendUint16(buf, e.typ)
		buf = le.AppendUint32(buf, e.count)
		buf = append(buf, e.value[:]...)
	}
	buf = le.AppendUint32(buf, 0) // no next IFD
	return buf
}

func shortEntry(tag uint16, v uint16) tiffEntry {
	var val [4]byte
	binary.LittleEndian.PutUint16(val[:2], v)
	return tiffEntry{tag: tag, typ: 3, count: 1, value: val}
}

func asciiEntry(tag uint16, s string) tiffEntry {
	var val [4]byte
	copy(val[:], s)
	return tiffEntry{tag: tag, typ: 2, count: uint32(len(s) + 1), value: val}
}

func TestExtract_imageMetadata(t *testing.T) {
	// ImageWidth (0x0100), ImageLength (0x0101), Model (0x0110)
	content := buildTIFF([]tiffEntry{
		shortEntry(0x0100, 640),
		shortEntry(0x0101, 480),
		asciiEntry(0x0110, "X90"),
	})
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.tif")
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor()
	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Kind != KindImage {
		t.Errorf("Kind = %q, want %q", res.Kind, KindImage)
	}
	if got := res.Image["dimensions"]; got != "640x480" {
		t.Errorf("dimensions = %q, want %q", got, "640x480")
	}
	if got := res.Image["camera_model"]; got != "X90" {
		t.Errorf("camera_model = %q, want %q", got, "X90")
	}
	// Tags the file does not carry default to empty strings.
	for _, field := range []string{"gps_coordinates", "date_taken"} {
		if got, ok := res.Image[field]; !ok || got != "" {
			t.Errorf("Image[%q] = (%q, %v), want present and empty", field, got, ok)
		}
	}
}

func TestExtract_imageMissingDimensionTags(t *testing.T) {
	content := buildTIFF([]tiffEntry{
		shortEntry(0x0100, 640), // width only, no length
	})
	dir := t.TempDir()
	path := filepath.Join(dir, "half.tif")
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor()
	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got := res.Image["dimensions"]; got != "" {
		t.Errorf("dimensions = %q, want empty when height is unknown", got)
	}
}

func TestExtract_imageCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.jpg")
	if err := os.WriteFile(path, []byte("this is not a jpeg"), 0600); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor()
	_, err := e.Extract(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for corrupt image")
	}
	if got := Reason(err); got != ReasonParseFailed {
		t.Errorf("Reason = %q, want %q", got, ReasonParseFailed)
	}
}
