// Package downloads tracks which catalog tracks are available as local files
// and fetches new ones over HTTP.
package downloads

import (
	"maps"
	"slices"
)

// Index maps track ids to local file locators.
// An entry exists only for a completed download.
// It is not safe for concurrent use; the owner serializes access.
type Index struct {
	entries map[string]string
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]string)}
}

// Lookup returns the local locator for id.
func (x *Index) Lookup(id string) (string, bool) {
	loc, ok := x.entries[id]
	return loc, ok
}

// Has reports whether id has been downloaded.
func (x *Index) Has(id string) bool {
	_, ok := x.entries[id]
	return ok
}

// Put records a completed download. Empty ids or locators are ignored.
func (x *Index) Put(id, locator string) {
	if id == "" || locator == "" {
		return
	}
	x.entries[id] = locator
}

// Delete removes the entry for id and returns its locator.
func (x *Index) Delete(id string) (string, bool) {
	loc, ok := x.entries[id]
	if ok {
		delete(x.entries, id)
	}
	return loc, ok
}

// ResolveSourceURI returns the local locator for id if downloaded, else remote.
func (x *Index) ResolveSourceURI(id, remote string) string {
	if loc, ok := x.entries[id]; ok {
		return loc
	}
	return remote
}

// Entries returns a copy of the index.
func (x *Index) Entries() map[string]string {
	return maps.Clone(x.entries)
}

// IDs returns the downloaded track ids in sorted order.
func (x *Index) IDs() []string {
	return slices.Sorted(maps.Keys(x.entries))
}

// Len returns the number of entries.
func (x *Index) Len() int {
	return len(x.entries)
}

// Restore replaces the index from persisted data.
func (x *Index) Restore(entries map[string]string) {
	x.entries = make(map[string]string, len(entries))
	for id, loc := range entries {
		x.Put(id, loc)
	}
}
