package playlist

import (
	"fmt"
	"testing"
)

func TestHistory_Push_MovesToFront(t *testing.T) {
	h := NewTrackHistory(RecentlyPlayedLimit)

	h.Push(Track{ID: "a"})
	h.Push(Track{ID: "b"})
	h.Push(Track{ID: "a"})

	if got := ids(h.Items()); !equalIDs(got, []string{"a", "b"}) {
		t.Errorf("Items() = %v, want [a b]", got)
	}
}

func TestHistory_Push_KeepsLatestCopy(t *testing.T) {
	h := NewTrackHistory(RecentlyPlayedLimit)

	h.Push(Track{ID: "a", Title: "old"})
	h.Push(Track{ID: "a", Title: "new"})

	items := h.Items()
	if len(items) != 1 {
		t.Fatalf("Len() = %d, want 1", len(items))
	}
	if items[0].Title != "new" {
		t.Errorf("Title = %q, want new", items[0].Title)
	}
}

func TestHistory_Push_EnforcesLimit(t *testing.T) {
	h := NewTrackHistory(RecentlyPlayedLimit)

	for i := range 20 {
		h.Push(Track{ID: fmt.Sprintf("t%d", i)})
	}

	if h.Len() != RecentlyPlayedLimit {
		t.Fatalf("Len() = %d, want %d", h.Len(), RecentlyPlayedLimit)
	}
	items := h.Items()
	if items[0].ID != "t19" {
		t.Errorf("first = %s, want t19", items[0].ID)
	}
	if items[len(items)-1].ID != "t5" {
		t.Errorf("last = %s, want t5", items[len(items)-1].ID)
	}
}

func TestHistory_Unbounded(t *testing.T) {
	h := NewQueryHistory(0)

	for i := range 50 {
		h.Push(fmt.Sprintf("q%d", i))
	}

	if h.Len() != 50 {
		t.Errorf("Len() = %d, want 50", h.Len())
	}
}

func TestHistory_Remove(t *testing.T) {
	h := NewQueryHistory(SearchHistoryLimit)
	h.Push("rock")
	h.Push("jazz")

	if !h.Remove("rock") {
		t.Fatal("Remove(rock) should return true")
	}
	if h.Remove("rock") {
		t.Error("second Remove(rock) should return false")
	}
	if h.Contains("rock") {
		t.Error("rock should be gone")
	}
	if !h.Contains("jazz") {
		t.Error("jazz should remain")
	}
}

func TestHistory_Clear(t *testing.T) {
	h := NewQueryHistory(SearchHistoryLimit)
	h.Push("rock")

	h.Clear()

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistory_Restore(t *testing.T) {
	h := NewQueryHistory(3)

	h.Restore([]string{"a", "b", "a", "c", "d"})

	want := []string{"a", "b", "c"}
	got := h.Items()
	if len(got) != len(want) {
		t.Fatalf("Items() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Items()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHistory_Match(t *testing.T) {
	h := NewTrackHistory(RecentlyPlayedLimit)
	h.Push(Track{ID: "1", Title: "Tum Hi Ho", Artists: "Arijit Singh"})
	h.Push(Track{ID: "2", Title: "Kesariya", Artists: "Arijit Singh"})
	h.Push(Track{ID: "3", Title: "Levitating", Artists: "Dua Lipa"})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty returns all", "", []string{"3", "2", "1"}},
		{"title", "levit", []string{"3"}},
		{"no match", "zzzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(h.Match(tt.query))
			if !equalIDs(got, tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestHistory_Match_Artist(t *testing.T) {
	h := NewTrackHistory(RecentlyPlayedLimit)
	h.Push(Track{ID: "1", Title: "Tum Hi Ho", Artists: "Arijit Singh"})
	h.Push(Track{ID: "3", Title: "Levitating", Artists: "Dua Lipa"})

	got := ids(h.Match("arijit"))
	if !equalIDs(got, []string{"1"}) {
		t.Errorf("Match(arijit) = %v, want [1]", got)
	}
}
