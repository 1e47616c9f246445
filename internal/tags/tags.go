// Package tags reads and writes metadata for downloaded audio files and
// sniffs their container format.
package tags

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// File extensions supported by the tags package.
const (
	ExtMP3 = ".mp3"
	ExtM4A = ".m4a"
	ExtMP4 = ".mp4"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// Format is an audio container recognized by the player.
type Format string

// Known formats.
const (
	FormatUnknown Format = ""
	FormatMP3     Format = "MP3"
	FormatMP4     Format = "MP4" // AAC or ALAC in an MP4/M4A container
)

// ErrUnknownFormat is returned when neither the content nor the name of a
// file identifies a supported container.
var ErrUnknownFormat = errors.New("unknown audio format")

// Tag contains the metadata written to and read from downloaded files.
type Tag struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Genre  string
	Date   string // YYYY or YYYY-MM-DD

	// Artwork (write-only, not populated during read)
	CoverArt []byte
}

// IsAudioFile returns true if the path has a supported audio extension.
func IsAudioFile(path string) bool {
	return FormatFromExt(path) != FormatUnknown
}

// FormatFromExt guesses the container from a file name or URL path.
func FormatFromExt(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3:
		return FormatMP3
	case ExtM4A, ExtMP4:
		return FormatMP4
	}
	return FormatUnknown
}

// Identify sniffs the container format from the first bytes of r.
// The read position is restored before returning.
func Identify(r io.ReadSeeker) (Format, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return FormatUnknown, err
	}
	defer r.Seek(start, io.SeekStart) //nolint:errcheck // best-effort rewind

	format, fileType, err := tag.Identify(r)
	if err == nil {
		switch {
		case format == tag.MP4:
			return FormatMP4, nil
		case fileType == tag.MP3:
			return FormatMP3, nil
		}
	}

	// Untagged MP3 streams start directly with a frame sync.
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return FormatUnknown, err
	}
	header := make([]byte, 2)
	if _, err := io.ReadFull(r, header); err != nil {
		return FormatUnknown, ErrUnknownFormat
	}
	if header[0] == 0xff && header[1]&0xe0 == 0xe0 {
		return FormatMP3, nil
	}
	return FormatUnknown, ErrUnknownFormat
}

// IdentifyFile sniffs the format of a file on disk, falling back to its
// extension when the content is not conclusive.
func IdentifyFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()

	format, err := Identify(f)
	if err == nil {
		return format, nil
	}
	if byExt := FormatFromExt(path); byExt != FormatUnknown {
		return byExt, nil
	}
	return FormatUnknown, err
}
