// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wizard runs the interactive dialogue that files a new research
// log: pick a track, give a title and a one-line summary, and get one
// Markdown file under the track directory.
//
// The dialogue is strictly linear. Its only branch is whether the track key
// is valid. Operator mistakes and write failures are reported and end the
// run cleanly; Run returns an error only when the input stream itself
// fails.
package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/nevinshine/research-dossier/internal/catalog"
	"github.com/nevinshine/research-dossier/internal/editor"
	"github.com/nevinshine/research-dossier/internal/scaffold"
	"github.com/nevinshine/research-dossier/pkg/types"
)

const banner = "SYSTEM SECURITY RESEARCH WIZARD"

// Outcome classifies how a run ended.
type Outcome int

const (
	// Created means the log file was written.
	Created Outcome = iota
	// InvalidSelection means the track key matched no track. Nothing was
	// written and the filesystem was not touched.
	InvalidSelection
	// EmptySlug means the title had no letters or digits to name the file.
	EmptySlug
	// WriteFailure means directory creation or the file write failed.
	WriteFailure
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case InvalidSelection:
		return "invalid-selection"
	case EmptySlug:
		return "empty-slug"
	case WriteFailure:
		return "write-failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result describes one run.
type Result struct {
	Outcome Outcome

	// Entry is the derived log entry; nil for InvalidSelection and EmptySlug.
	Entry *types.LogEntry

	// Path is the written file, set only for Created.
	Path string

	// Warnings lists front-matter problems flagged before writing.
	Warnings []string

	// Err is the cause of any outcome other than Created.
	Err error
}

// Wizard holds the collaborators of a run.
type Wizard struct {
	Catalog    *catalog.Catalog
	Scaffolder *scaffold.Scaffolder

	// Editor opens the new file after a successful write. Nil disables it.
	Editor editor.Launcher

	// Logger receives structured events. Nil means no logging.
	Logger *zap.Logger

	// Now supplies the creation time. Nil means time.Now.
	Now func() time.Time
}

// styles colors wizard output. Each renderer is bound to its writer, so
// colors only appear when that writer is a terminal.
type styles struct {
	title   lipgloss.Style
	prompt  lipgloss.Style
	success lipgloss.Style
	info    lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
}

func newStyles(out, errOut io.Writer) styles {
	o := lipgloss.NewRenderer(out)
	e := lipgloss.NewRenderer(errOut)
	return styles{
		title:   o.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		prompt:  o.NewStyle().Foreground(lipgloss.Color("3")),
		success: o.NewStyle().Foreground(lipgloss.Color("2")),
		info:    o.NewStyle().Foreground(lipgloss.Color("6")),
		warn:    e.NewStyle().Foreground(lipgloss.Color("3")),
		err:     e.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Run asks for the track, title, and summary on in, writing prompts to out
// and diagnostics to errOut, then creates the log.
func (w *Wizard) Run(in io.Reader, out, errOut io.Writer) (*Result, error) {
	log := w.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := w.Now
	if now == nil {
		now = time.Now
	}
	st := newStyles(out, errOut)
	r := bufio.NewReader(in)

	w.printMenu(out, st)

	fmt.Fprintln(out)
	key, err := ask(r, out, st, fmt.Sprintf("Where does this log belong? (%s):", w.Catalog.KeyRange()))
	if err != nil {
		return nil, err
	}
	track, err := w.Catalog.Lookup(key)
	if err != nil {
		fmt.Fprintln(errOut, st.err.Render("Invalid choice. Exiting."))
		log.Info("invalid track selection", zap.String("key", strings.TrimSpace(key)))
		return &Result{Outcome: InvalidSelection, Err: err}, nil
	}

	title, err := ask(r, out, st, "Title of the Log:")
	if err != nil {
		return nil, err
	}
	tldr, err := ask(r, out, st, "TL;DR (One sentence summary):")
	if err != nil {
		return nil, err
	}

	entry, err := scaffold.NewEntry(track, title, tldr, now())
	if err != nil {
		if errors.Is(err, scaffold.ErrEmptySlug) {
			fmt.Fprintln(errOut, st.err.Render("Title needs at least one letter or digit to name the file. Exiting."))
			log.Info("title produced no slug", zap.String("title", title))
			return &Result{Outcome: EmptySlug, Err: err}, nil
		}
		return nil, err
	}

	res := &Result{Entry: entry, Warnings: scaffold.Warnings(entry)}
	for _, msg := range res.Warnings {
		fmt.Fprintln(errOut, st.warn.Render("warning: "+msg))
	}

	path, err := w.Scaffolder.Write(entry)
	if err != nil {
		fmt.Fprintln(errOut, st.err.Render("Failed to create file: "+err.Error()))
		log.Error("failed to create log",
			zap.String("track", track.Name),
			zap.String("path", w.Scaffolder.FullPath(entry)),
			zap.Error(err))
		res.Outcome = WriteFailure
		res.Err = err
		return res, nil
	}

	res.Outcome = Created
	res.Path = path
	fmt.Fprintf(out, "\n%s\n", st.success.Render("Log created: "+entry.Filename))
	log.Info("log created",
		zap.String("track", track.Name),
		zap.String("path", path),
		zap.String("date", entry.Date))

	if w.Editor != nil {
		// The log is already on disk; a launch failure is only logged.
		if err := w.Editor.Open(path); err != nil {
			log.Debug("editor launch failed", zap.String("path", path), zap.Error(err))
		}
		fmt.Fprintln(out, st.info.Render("Opening file..."))
	}

	return res, nil
}

func (w *Wizard) printMenu(out io.Writer, st styles) {
	fmt.Fprintf(out, "\n%s\n", st.title.Render(banner))
	fmt.Fprintln(out, strings.Repeat("-", 35))
	for _, t := range w.Catalog.Tracks() {
		fmt.Fprintf(out, "%s: %s\n", t.Key, t.Name)
	}
}

// ask writes prompt and reads one line, without its line terminator. Input
// that ends without a newline still counts as the answer.
func ask(r *bufio.Reader, out io.Writer, st styles, prompt string) (string, error) {
	fmt.Fprintf(out, "%s ", st.prompt.Render(prompt))

	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
