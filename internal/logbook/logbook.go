// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logbook reads the research logs already filed under each track:
// it lists them with their front-matter and checks that the front-matter
// will render on the documentation site.
package logbook

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/nevinshine/research-dossier/pkg/types"
)

const logExt = ".md"

// Entry is one log file on disk.
type Entry struct {
	Track types.Track `json:"track" yaml:"track"`

	// Path is the file path including the content root.
	Path string `json:"path" yaml:"path"`

	// Meta is the parsed front-matter; nil when Err is set.
	Meta *types.FrontMatter `json:"meta,omitempty" yaml:"meta,omitempty"`

	// Err describes why the file could not be read or parsed.
	Err error `json:"-" yaml:"-"`
}

// Slug returns the filename without its extension.
func (e Entry) Slug() string {
	return strings.TrimSuffix(filepath.Base(e.Path), logExt)
}

// LogFiles returns the sorted paths of the log files in a track directory.
// A missing directory yields no files.
func LogFiles(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading track directory %s: %w", dir, err)
	}
	var files []string
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != logExt {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

// List returns every log under the given tracks, newest first. Files whose
// front-matter cannot be parsed are included with Err set and sort last.
func List(fs afero.Fs, root string, tracks []types.Track) ([]Entry, error) {
	var entries []Entry
	for _, t := range tracks {
		files, err := LogFiles(fs, filepath.Join(root, t.Dir))
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			e := Entry{Track: t, Path: f}
			data, err := afero.ReadFile(fs, f)
			if err != nil {
				e.Err = fmt.Errorf("reading %s: %w", filepath.Base(f), err)
			} else if e.Meta, err = Parse(data); err != nil {
				e.Err = err
			}
			entries = append(entries, e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if (a.Meta == nil) != (b.Meta == nil) {
			return a.Meta != nil
		}
		if a.Meta != nil && a.Meta.Date != b.Meta.Date {
			return a.Meta.Date > b.Meta.Date
		}
		return a.Path < b.Path
	})
	return entries, nil
}
