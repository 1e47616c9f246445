package downloads

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/Sumitb09/music-player/internal/tags"
)

// LocalPath converts a locator to a filesystem path.
func LocalPath(locator string) string {
	return strings.TrimPrefix(locator, "file://")
}

// RemoveFile deletes a downloaded file. A missing file is not an error.
func RemoveFile(locator string) error {
	err := os.Remove(LocalPath(locator))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// FileSize returns the size of a downloaded file, or 0 if it cannot be read.
func FileSize(locator string) int64 {
	info, err := os.Stat(LocalPath(locator))
	if err != nil {
		return 0
	}
	return info.Size()
}

// Verify returns the ids whose file is missing or not a playable audio
// container, in sorted order.
func Verify(x *Index) []string {
	var stale []string
	for _, id := range x.IDs() {
		loc, _ := x.Lookup(id)
		if _, err := tags.IdentifyFile(LocalPath(loc)); err != nil {
			stale = append(stale, id)
		}
	}
	return stale
}
