// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the fixed set of research tracks a log entry can be
// filed under. A Catalog is built once and never mutated; callers only read
// from it.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nevinshine/research-dossier/pkg/types"
)

// ErrInvalidSelection is returned by Lookup when a key names no track.
var ErrInvalidSelection = errors.New("invalid selection")

// Catalog is an immutable, ordered set of tracks indexed by key.
type Catalog struct {
	tracks []types.Track
	byKey  map[string]types.Track
}

// defaultCatalog mirrors the content tree of the dossier site.
var defaultCatalog = MustNew([]types.Track{
	{Key: "1", Name: "Sentinel (Host)", Dir: "src/content/docs/sentinel/logs"},
	{Key: "2", Name: "Hyperion (Network)", Dir: "src/content/docs/hyperion/logs"},
	{Key: "3", Name: "Telos (Agentic)", Dir: "src/content/docs/telos/logs"},
	{Key: "9", Name: "Field Notes (Side Research)", Dir: "src/content/docs/notes"},
})

// Default returns the process-wide track catalog.
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog from tracks, ordered by key. Keys must be a single
// non-space character and unique; every track needs a directory.
func New(tracks []types.Track) (*Catalog, error) {
	c := &Catalog{
		tracks: make([]types.Track, 0, len(tracks)),
		byKey:  make(map[string]types.Track, len(tracks)),
	}
	for _, t := range tracks {
		if len(t.Key) != 1 || strings.TrimSpace(t.Key) == "" {
			return nil, fmt.Errorf("track %q: key must be a single character, got %q", t.Name, t.Key)
		}
		if t.Dir == "" {
			return nil, fmt.Errorf("track %q: directory is required", t.Name)
		}
		if _, dup := c.byKey[t.Key]; dup {
			return nil, fmt.Errorf("duplicate track key %q", t.Key)
		}
		c.byKey[t.Key] = t
		c.tracks = append(c.tracks, t)
	}
	sort.Slice(c.tracks, func(i, j int) bool { return c.tracks[i].Key < c.tracks[j].Key })
	return c, nil
}

// MustNew is like New but panics on an invalid track list. It is meant for
// package-level tables.
func MustNew(tracks []types.Track) *Catalog {
	c, err := New(tracks)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the track for key after trimming surrounding whitespace.
// An unknown or empty key yields ErrInvalidSelection.
func (c *Catalog) Lookup(key string) (types.Track, error) {
	k := strings.TrimSpace(key)
	t, ok := c.byKey[k]
	if !ok {
		return types.Track{}, fmt.Errorf("%w: %q", ErrInvalidSelection, k)
	}
	return t, nil
}

// Tracks returns a copy of the tracks in key order.
func (c *Catalog) Tracks() []types.Track {
	out := make([]types.Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// Keys returns the selection keys in order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.tracks))
	for i, t := range c.tracks {
		keys[i] = t.Key
	}
	return keys
}

// KeyRange renders the keys compactly for a prompt, collapsing consecutive
// digits into ranges: keys 1,2,3,9 become "1-3, 9".
func (c *Catalog) KeyRange() string {
	keys := c.Keys()
	var parts []string
	for i := 0; i < len(keys); {
		j := i
		for j+1 < len(keys) && isDigit(keys[j]) && isDigit(keys[j+1]) && keys[j+1][0] == keys[j][0]+1 {
			j++
		}
		switch {
		case j == i:
			parts = append(parts, keys[i])
		case j == i+1:
			parts = append(parts, keys[i], keys[j])
		default:
			parts = append(parts, keys[i]+"-"+keys[j])
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}

func isDigit(k string) bool {
	return k[0] >= '0' && k[0] <= '9'
}
