package registry

// DefaultSets returns the stock per-category extension sets. The document set
// matches what the document backend can convert; audio/image/video match
// common container formats the media backend can probe.
func DefaultSets() map[Category][]string {
	return map[Category][]string{
		CategoryDocument: {".pdf", ".docx", ".odt", ".rtf", ".xlsx", ".pptx", ".odp", ".ods"},
		CategoryAudio:    {".mp3", ".flac", ".ogg", ".wav", ".m4a", ".aac", ".wma"},
		CategoryImage:    {".jpg", ".jpeg", ".tiff", ".tif", ".heic"},
		CategoryVideo:    {".mp4", ".mkv", ".avi", ".mov", ".webm", ".wmv", ".flv"},
		CategoryText:     {".txt", ".md", ".rst", ".csv", ".log"},
	}
}
