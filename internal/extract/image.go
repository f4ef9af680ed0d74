package extract

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// extractImage reads EXIF metadata from the image at path. All four fields
// are always present in the result; tags the file does not carry map to
// empty strings.
func (e *Extractor) extractImage(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode EXIF from %s: %w", path, err)
	}
	meta := Metadata{
		"dimensions":      exifDimensions(x),
		"gps_coordinates": exifGPS(x),
		"camera_model":    exifString(x, exif.Model),
		"date_taken":      exifString(x, exif.DateTime),
	}
	return &Result{Kind: KindImage, Image: meta}, nil
}

// exifString returns the ASCII value of field, or "" when absent.
func exifString(x *exif.Exif, field exif.FieldName) string {
	tag, err := x.Get(field)
	if err != nil {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return s
}

// exifInt returns the integer value of field and whether it was present.
func exifInt(x *exif.Exif, field exif.FieldName) (int, bool) {
	tag, err := x.Get(field)
	if err != nil {
		return 0, false
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0, false
	}
	return v, true
}

// exifDimensions renders the pixel dimensions as "WxH". The EXIF pixel
// dimension tags are preferred; the TIFF image width/length tags are the
// fallback.
func exifDimensions(x *exif.Exif) string {
	width, wok := exifInt(x, exif.PixelXDimension)
	height, hok := exifInt(x, exif.PixelYDimension)
	if !wok || !hok {
		width, wok = exifInt(x, exif.ImageWidth)
		height, hok = exifInt(x, exif.ImageLength)
	}
	if !wok || !hok {
		return ""
	}
	return formatDimensions(width, height)
}

// exifGPS converts the GPS tags to "lat,lon[,alt]" in decimal degrees and
// meters. No GPS info yields "".
func exifGPS(x *exif.Exif) string {
	lat, lon, err := x.LatLong()
	if err != nil {
		return ""
	}
	if alt, ok := exifAltitude(x); ok {
		return fmt.Sprintf("%.6f,%.6f,%.1f", lat, lon, alt)
	}
	return fmt.Sprintf("%.6f,%.6f", lat, lon)
}

// exifAltitude returns the GPS altitude in meters, negative when the
// altitude reference marks below sea level.
func exifAltitude(x *exif.Exif) (float64, bool) {
	tag, err := x.Get(exif.GPSAltitude)
	if err != nil {
		return 0, false
	}
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return 0, false
	}
	alt := float64(num) / float64(den)
	if ref, err := x.Get(exif.GPSAltitudeRef); err == nil {
		if v, err := ref.Int(0); err == nil && v == 1 {
			alt = -alt
		}
	}
	return alt, true
}
