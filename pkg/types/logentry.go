// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Track is one research track a log entry can be filed under. The catalog of
// tracks is fixed at process start.
type Track struct {
	// Key is the single-character menu selection (e.g. "1", "9").
	Key string `json:"key" yaml:"key"`

	// Name is the display name (e.g. "Sentinel (Host)").
	Name string `json:"name" yaml:"name"`

	// Dir is the destination directory relative to the content root
	// (e.g. "src/content/docs/sentinel/logs").
	Dir string `json:"dir" yaml:"dir"`
}

// LogEntry is a log file about to be written. It lives for one wizard run;
// after the write the file on disk is the record.
type LogEntry struct {
	// Track is the resolved destination track.
	Track Track `json:"track" yaml:"track"`

	// Title is the operator's free-text title, kept verbatim.
	Title string `json:"title" yaml:"title"`

	// TLDR is the one-line summary, kept verbatim.
	TLDR string `json:"tldr" yaml:"tldr"`

	// Date is the UTC creation date in YYYY-MM-DD format.
	Date string `json:"date" yaml:"date"`

	// Slug is the URL-safe identifier derived from Title.
	Slug string `json:"slug" yaml:"slug"`

	// Filename is Slug plus the ".md" extension.
	Filename string `json:"filename" yaml:"filename"`

	// Path is Track.Dir joined with Filename, relative to the content root.
	Path string `json:"path" yaml:"path"`
}

// FrontMatter holds the YAML block at the top of a log file.
type FrontMatter struct {
	Title string `json:"title" yaml:"title"`
	Date  string `json:"date" yaml:"date"`
	TLDR  string `json:"tldr" yaml:"tldr"`
}
