//nolint:goconst // test file with repeated string literals
package playlist

import (
	"testing"
)

func ids(tracks []Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewPlaylist(t *testing.T) {
	p := NewPlaylist()

	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if p.Tracks() == nil {
		t.Error("Tracks() should return empty slice, not nil")
	}
}

func TestPlaylist_Add(t *testing.T) {
	p := NewPlaylist()

	p.Add(Track{ID: "a"}, Track{ID: "b"})

	if got := ids(p.Tracks()); !equalIDs(got, []string{"a", "b"}) {
		t.Errorf("Tracks() = %v, want [a b]", got)
	}
}

func TestPlaylist_Prepend(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a"})

	p.Prepend(Track{ID: "b"})

	if got := ids(p.Tracks()); !equalIDs(got, []string{"b", "a"}) {
		t.Errorf("Tracks() = %v, want [b a]", got)
	}
}

func TestPlaylist_Remove(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a"}, Track{ID: "b"}, Track{ID: "c"})

	if !p.Remove(1) {
		t.Fatal("Remove should return true")
	}
	if got := ids(p.Tracks()); !equalIDs(got, []string{"a", "c"}) {
		t.Errorf("Tracks() = %v, want [a c]", got)
	}
}

func TestPlaylist_Remove_InvalidIndex(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a"})

	for _, idx := range []int{-1, 1, 10} {
		if p.Remove(idx) {
			t.Errorf("Remove(%d) should return false", idx)
		}
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestPlaylist_RemoveID_RemovesEveryOccurrence(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a"}, Track{ID: "b"}, Track{ID: "a"})

	n := p.RemoveID("a")

	if n != 2 {
		t.Errorf("RemoveID() = %d, want 2", n)
	}
	if got := ids(p.Tracks()); !equalIDs(got, []string{"b"}) {
		t.Errorf("Tracks() = %v, want [b]", got)
	}
}

func TestPlaylist_Tracks_ReturnsCopy(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a"})

	tracks := p.Tracks()
	tracks[0].ID = "modified"

	if p.Track(0).ID != "a" {
		t.Error("Tracks() should return a copy")
	}
}

func TestPlaylist_Move(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a"}},
		{"backward", 2, 0, []string{"c", "a", "b"}},
		{"same index", 1, 1, []string{"a", "b", "c"}},
		{"past end clamps", 0, 10, []string{"b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlaylist()
			p.Add(Track{ID: "a"}, Track{ID: "b"}, Track{ID: "c"})

			if !p.Move(tt.from, tt.to) {
				t.Fatal("Move should return true")
			}
			if got := ids(p.Tracks()); !equalIDs(got, tt.want) {
				t.Errorf("Tracks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaylist_Move_InvalidIndex(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a"}, Track{ID: "b"})

	if p.Move(-1, 0) {
		t.Error("Move(-1, 0) should return false")
	}
	if p.Move(2, 0) {
		t.Error("Move(2, 0) should return false")
	}
}

func TestPlaylist_Move_NegativeTargetClamps(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a"}, Track{ID: "b"}, Track{ID: "c"})

	if !p.Move(2, -4) {
		t.Fatal("Move(2, -4) should return true")
	}
	if got := ids(p.Tracks()); !equalIDs(got, []string{"c", "a", "b"}) {
		t.Errorf("Tracks() = %v, want [c a b]", got)
	}
}

func TestTrack_BestSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []Source
		want    string
	}{
		{
			name:    "no sources",
			sources: nil,
			want:    "",
		},
		{
			name: "preferred quality present",
			sources: []Source{
				{Quality: "96kbps", URL: "low"},
				{Quality: "320kbps", URL: "high"},
			},
			want: "high",
		},
		{
			name: "falls back to first",
			sources: []Source{
				{Quality: "96kbps", URL: "low"},
				{Quality: "160kbps", URL: "mid"},
			},
			want: "low",
		},
		{
			name: "preferred with empty url is skipped",
			sources: []Source{
				{Quality: "96kbps", URL: "low"},
				{Quality: "320kbps", URL: ""},
			},
			want: "low",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Track{Sources: tt.sources}
			if got := tr.BestSource("320kbps"); got != tt.want {
				t.Errorf("BestSource() = %q, want %q", got, tt.want)
			}
		})
	}
}
