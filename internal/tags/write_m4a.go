package tags

import (
	"fmt"

	"github.com/Sorrow446/go-mp4tag"
)

// writeM4ATags writes MP4/M4A tags using go-mp4tag.
func writeM4ATags(path string, t *Tag) error {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer mp4.Close()

	tags := &mp4tag.MP4Tags{
		Title:       t.Title,
		Artist:      t.Artist,
		Album:       t.Album,
		Date:        t.Date,
		CustomGenre: t.Genre,
	}
	if len(t.CoverArt) > 0 {
		tags.Pictures = []*mp4tag.MP4Picture{{Data: t.CoverArt}}
	}

	if err := mp4.Write(tags, nil); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
