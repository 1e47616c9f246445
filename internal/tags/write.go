package tags

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Write writes tag metadata to an audio file.
// The file must already exist. This operation modifies the file in place.
func Write(path string, t *Tag) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3:
		return writeMP3Tags(path, t)
	case ExtM4A, ExtMP4:
		return writeM4ATags(path, t)
	default:
		return fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

const (
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
)

// detectMimeType detects the MIME type of image data.
func detectMimeType(data []byte) string {
	if http.DetectContentType(data) == mimePNG {
		return mimePNG
	}
	return mimeJPEG
}
