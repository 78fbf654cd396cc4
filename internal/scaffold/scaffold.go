// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scaffold derives a log entry from operator input, renders its
// Markdown with front-matter, and writes it under the track directory.
package scaffold

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/afero"

	"github.com/nevinshine/research-dossier/internal/slug"
	"github.com/nevinshine/research-dossier/pkg/types"
)

const (
	fileExt    = ".md"
	dateLayout = "2006-01-02"
	dirPerm    = 0o755
	filePerm   = 0o644
)

// ErrEmptySlug is returned when a title has no ASCII letters or digits and
// would produce the filename ".md".
var ErrEmptySlug = errors.New("title produces an empty slug")

//go:embed templates/log.md.tmpl
var logTemplateText string

// text/template performs no escaping, so title and summary land in the
// quoted scalars verbatim.
var logTemplate = template.Must(template.New("log.md").Parse(logTemplateText))

// WriteError reports a failure to create the destination directory or
// write the log file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// NewEntry builds the log entry for title and tldr filed under track. The
// date is now's UTC calendar date.
func NewEntry(track types.Track, title, tldr string, now time.Time) (*types.LogEntry, error) {
	s := slug.Slugify(title)
	if s == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptySlug, title)
	}
	filename := s + fileExt
	return &types.LogEntry{
		Track:    track,
		Title:    title,
		TLDR:     tldr,
		Date:     now.UTC().Format(dateLayout),
		Slug:     s,
		Filename: filename,
		Path:     filepath.Join(track.Dir, filename),
	}, nil
}

// Render produces the Markdown document for e.
func Render(e *types.LogEntry) ([]byte, error) {
	var buf bytes.Buffer
	if err := logTemplate.Execute(&buf, e); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", e.Filename, err)
	}
	return buf.Bytes(), nil
}

// Warnings lists fields of e whose values break the double-quoted
// front-matter scalars. The content is still written as-is.
func Warnings(e *types.LogEntry) []string {
	var warnings []string
	for _, f := range []struct{ name, value string }{
		{"title", e.Title},
		{"tldr", e.TLDR},
	} {
		if strings.ContainsAny(f.value, `"\`) {
			warnings = append(warnings, fmt.Sprintf(
				"%s contains a quote or backslash that is not escaped; the front-matter may not parse", f.name))
		}
	}
	return warnings
}

// Scaffolder writes rendered log entries beneath a content root.
type Scaffolder struct {
	fs   afero.Fs
	root string
}

// New returns a Scaffolder that resolves entry paths against root on fs.
func New(fs afero.Fs, root string) *Scaffolder {
	if root == "" {
		root = "."
	}
	return &Scaffolder{fs: fs, root: root}
}

// FullPath returns where e will be written.
func (s *Scaffolder) FullPath(e *types.LogEntry) string {
	return filepath.Join(s.root, e.Path)
}

// Write renders e and stores it, creating missing directories and replacing
// any existing file at the destination without warning. The content goes to
// a temporary file first and is renamed into place, so readers never see a
// partial log. Failures are returned as *WriteError.
func (s *Scaffolder) Write(e *types.LogEntry) (string, error) {
	full := s.FullPath(e)

	content, err := Render(e)
	if err != nil {
		return "", &WriteError{Path: full, Err: err}
	}

	dir := filepath.Dir(full)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return "", &WriteError{Path: full, Err: fmt.Errorf("creating directory %s: %w", dir, err)}
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+e.Slug+"-*.tmp")
	if err != nil {
		return "", &WriteError{Path: full, Err: fmt.Errorf("creating temporary file: %w", err)}
	}
	tmpName := tmp.Name()

	if err := s.commit(tmp, content, full); err != nil {
		_ = s.fs.Remove(tmpName)
		return "", &WriteError{Path: full, Err: err}
	}
	return full, nil
}

func (s *Scaffolder) commit(tmp afero.File, content []byte, dest string) error {
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}
	if err := s.fs.Chmod(tmp.Name(), os.FileMode(filePerm)); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := s.fs.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("moving into place: %w", err)
	}
	return nil
}
