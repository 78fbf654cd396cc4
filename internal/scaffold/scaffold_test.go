// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nevinshine/research-dossier/pkg/types"
)

var (
	sentinel = types.Track{Key: "1", Name: "Sentinel (Host)", Dir: "src/content/docs/sentinel/logs"}
	notes    = types.Track{Key: "9", Name: "Field Notes (Side Research)", Dir: "src/content/docs/notes"}
	fixedNow = time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
)

func TestNewEntry(t *testing.T) {
	e, err := NewEntry(sentinel, "Kernel Hook Discovery", "Found a new LSM hook.", fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "Kernel Hook Discovery", e.Title)
	assert.Equal(t, "Found a new LSM hook.", e.TLDR)
	assert.Equal(t, "2026-03-14", e.Date)
	assert.Equal(t, "kernel-hook-discovery", e.Slug)
	assert.Equal(t, "kernel-hook-discovery.md", e.Filename)
	assert.Equal(t, filepath.Join("src/content/docs/sentinel/logs", "kernel-hook-discovery.md"), e.Path)
	assert.Equal(t, sentinel, e.Track)
}

func TestNewEntryUsesUTCDate(t *testing.T) {
	// 23:30 on the 14th in UTC is already the 15th in Tokyo.
	tokyo := time.FixedZone("JST", 9*60*60)
	e, err := NewEntry(notes, "Late Night", "", fixedNow.In(tokyo))
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", e.Date)
}

func TestNewEntryKeepsTitleVerbatim(t *testing.T) {
	e, err := NewEntry(notes, "  Weird Edge Case!! ", "x", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "weird-edge-case", e.Slug)
	assert.Equal(t, "  Weird Edge Case!! ", e.Title)
}

func TestNewEntryEmptySlug(t *testing.T) {
	for _, title := range []string{"", "   ", "!!!", "日本語"} {
		t.Run(title, func(t *testing.T) {
			_, err := NewEntry(notes, title, "summary", fixedNow)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEmptySlug)
		})
	}
}

func TestRender(t *testing.T) {
	e, err := NewEntry(sentinel, "Kernel Hook Discovery", "Found a new LSM hook.", fixedNow)
	require.NoError(t, err)

	got, err := Render(e)
	require.NoError(t, err)

	want := "---\n" +
		"title: \"Kernel Hook Discovery\"\n" +
		"date: 2026-03-14\n" +
		"tldr: \"Found a new LSM hook.\"\n" +
		"---\n" +
		"\n" +
		"## Overview\n" +
		"(Paste your content here...)\n" +
		"\n" +
		"## Key Findings\n" +
		"- \n" +
		"- \n" +
		"\n" +
		"## Next Steps\n"
	assert.Equal(t, want, string(got))
}

func TestRenderDoesNotEscape(t *testing.T) {
	e, err := NewEntry(sentinel, `Say "hi" <now> & \later`, `a "b"`, fixedNow)
	require.NoError(t, err)

	got, err := Render(e)
	require.NoError(t, err)
	assert.Contains(t, string(got), `title: "Say "hi" <now> & \later"`)
	assert.Contains(t, string(got), `tldr: "a "b""`)
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name  string
		title string
		tldr  string
		want  []string
	}{
		{name: "clean", title: "Plain", tldr: "Plain summary."},
		{name: "quote in title", title: `A "quoted" title`, tldr: "ok", want: []string{"title"}},
		{name: "backslash in tldr", title: "ok", tldr: `C:\path`, want: []string{"tldr"}},
		{name: "both", title: `"`, tldr: `\`, want: []string{"title", "tldr"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &types.LogEntry{Title: tt.title, TLDR: tt.tldr}
			warnings := Warnings(e)
			require.Len(t, warnings, len(tt.want))
			for i, field := range tt.want {
				assert.True(t, strings.HasPrefix(warnings[i], field+" "), warnings[i])
			}
		})
	}
}

func TestWriteCreatesDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "/site")

	e, err := NewEntry(sentinel, "Kernel Hook Discovery", "Found a new LSM hook.", fixedNow)
	require.NoError(t, err)

	full, err := s.Write(e)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/site", "src/content/docs/sentinel/logs", "kernel-hook-discovery.md"), full)

	data, err := afero.ReadFile(fs, full)
	require.NoError(t, err)
	want, err := Render(e)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(data))

	// Only the log itself remains; the temporary file was renamed away.
	entries, err := afero.ReadDir(fs, filepath.Dir(full))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kernel-hook-discovery.md", entries[0].Name())
}

func TestWriteExistingDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/site/src/content/docs/notes", 0o755))

	e, err := NewEntry(notes, "Side Quest", "s", fixedNow)
	require.NoError(t, err)

	_, err = New(fs, "/site").Write(e)
	require.NoError(t, err)
}

func TestWriteOverwritesExisting(t *testing.T) {
	root := t.TempDir()
	s := New(afero.NewOsFs(), root)

	first, err := NewEntry(notes, "Weird Edge Case", "first", fixedNow)
	require.NoError(t, err)
	_, err = s.Write(first)
	require.NoError(t, err)

	second, err := NewEntry(notes, "  weird edge-case?! ", "second", fixedNow.Add(48*time.Hour))
	require.NoError(t, err)
	require.Equal(t, first.Path, second.Path)

	full, err := s.Write(second)
	require.NoError(t, err)

	data, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tldr: "second"`)
	assert.NotContains(t, string(data), `tldr: "first"`)

	info, err := os.Stat(full)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *Scaffolder
	}{
		{
			name: "read-only filesystem",
			setup: func(t *testing.T) *Scaffolder {
				return New(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/site")
			},
		},
		{
			name: "content root is a file",
			setup: func(t *testing.T) *Scaffolder {
				root := filepath.Join(t.TempDir(), "blocked")
				require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))
				return New(afero.NewOsFs(), root)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setup(t)
			e, err := NewEntry(sentinel, "Kernel Hook Discovery", "x", fixedNow)
			require.NoError(t, err)

			_, err = s.Write(e)
			require.Error(t, err)

			var we *WriteError
			require.True(t, errors.As(err, &we))
			assert.Equal(t, s.FullPath(e), we.Path)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestNewDefaultsRoot(t *testing.T) {
	e := &types.LogEntry{Path: filepath.Join("a", "b.md")}
	assert.Equal(t, filepath.Join("a", "b.md"), New(afero.NewMemMapFs(), "").FullPath(e))
}
