// Command statedump prints the persisted player snapshot.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Sumitb09/music-player/internal/config"
	"github.com/Sumitb09/music-player/internal/downloads"
	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/state"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("statedump: %v", err)
	}
}

// updatedAter is implemented by stores that track write times.
type updatedAter interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)
}

func run(ctx context.Context, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("statedump", flag.ContinueOnError)
	fs.SetOutput(w)
	asJSON := fs.Bool("json", false, "print the stored snapshot as indented JSON")
	backend := fs.String("backend", "", "storage backend: sqlite or bolt (default from config)")
	path := fs.String("path", "", "store file (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *backend == "" || *path == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if *backend == "" {
			*backend = cfg.Storage.Backend
		}
		if *path == "" {
			*path = cfg.Storage.Path
		}
	}

	store, err := state.Open(*backend, *path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	raw, ok, err := store.Get(ctx, state.SnapshotKey)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if !ok {
		fmt.Fprintln(w, "No snapshot stored.")
		return nil
	}

	if *asJSON {
		var out bytes.Buffer
		if err := json.Indent(&out, []byte(raw), "", "  "); err != nil {
			return fmt.Errorf("format snapshot: %w", err)
		}
		fmt.Fprintln(w, out.String())
		return nil
	}

	snap, err := state.DecodeSnapshot([]byte(raw))
	if err != nil {
		return err
	}

	var updated time.Time
	if u, ok := store.(updatedAter); ok {
		if t, found, err := u.UpdatedAt(ctx, state.SnapshotKey); err == nil && found {
			updated = t
		}
	}
	return printSummary(w, snap, updated)
}

func printSummary(w io.Writer, s state.Snapshot, updated time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if !updated.IsZero() {
		fmt.Fprintf(tw, "Updated:\t%s\n", humanize.Time(updated))
	}
	fmt.Fprintf(tw, "Queue:\t%s\n", count(len(s.Queue), "track"))
	fmt.Fprintf(tw, "Shuffle:\t%s\n", onOff(s.Shuffle))
	fmt.Fprintf(tw, "Repeat:\t%s\n", s.RepeatMode)
	fmt.Fprintf(tw, "Theme:\t%s\n", s.Theme)
	fmt.Fprintf(tw, "Favorites:\t%s\n", count(len(s.Favorites), "track"))
	fmt.Fprintf(tw, "Recently played:\t%s\n", count(len(s.RecentlyPlayed), "track"))
	fmt.Fprintf(tw, "Search history:\t%s\n", strings.Join(quoted(s.SearchHistory), ", "))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.Queue) > 0 {
		fmt.Fprintln(w, "\nQueue")
		for i, t := range s.Queue {
			marker := " "
			if i == s.CurrentIndex {
				marker = "▶"
			}
			fmt.Fprintf(w, "%s %3d  %s\n", marker, i+1, describe(t))
		}
	}

	if len(s.Playlists) > 0 {
		fmt.Fprintf(w, "\nPlaylists (%d)\n", len(s.Playlists))
		for _, pl := range s.Playlists {
			fmt.Fprintf(w, "  %s (%s)\n", pl.Name, count(len(pl.Tracks), "track"))
		}
	}

	if len(s.Downloaded) > 0 {
		ids := make([]string, 0, len(s.Downloaded))
		for id := range s.Downloaded {
			ids = append(ids, id)
		}
		slices.Sort(ids)

		var total int64
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, id := range ids {
			loc := s.Downloaded[id]
			size := downloads.FileSize(loc)
			total += size
			sizeStr := "missing"
			if size > 0 {
				sizeStr = humanize.Bytes(uint64(size))
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", id, sizeStr, downloads.LocalPath(loc))
		}
		fmt.Fprintf(w, "\nDownloads (%d, %s)\n", len(ids), humanize.Bytes(uint64(total)))
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func describe(t playlist.Track) string {
	title := t.Title
	if title == "" {
		title = t.ID
	}
	if t.Artists != "" {
		title += " - " + t.Artists
	}
	return title
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func quoted(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
