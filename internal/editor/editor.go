// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package editor opens freshly written logs in an external editor.
//
// The editor is started and released without waiting for it to exit. Open
// returns an error only so callers can log it; a failed launch does not
// change the outcome of the write that preceded it.
package editor

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommand is the editor used when none is configured.
const DefaultCommand = "code"

// ErrNoCommand is returned by New for a blank editor command.
var ErrNoCommand = errors.New("editor command is empty")

// Launcher opens a file for editing.
type Launcher interface {
	Open(path string) error
}

// executor abstracts process start for testing.
type executor interface {
	LookPath(file string) (string, error)
	Start(name string, args ...string) error
}

// osExecutor starts real processes through os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// The editor may outlive us; drop the handle instead of waiting.
	return cmd.Process.Release()
}

// command launches a configured editor binary with optional leading
// arguments, followed by the file path.
type command struct {
	bin  string
	args []string
	exec executor
}

var defaultExec = &osExecutor{}

// New parses an editor command line such as "code" or "code --reuse-window"
// and returns a Launcher for it.
func New(cmdline string) (Launcher, error) {
	return newCommand(cmdline, defaultExec)
}

func newCommand(cmdline string, exec executor) (*command, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return nil, ErrNoCommand
	}
	return &command{bin: fields[0], args: fields[1:], exec: exec}, nil
}

func (c *command) Open(path string) error {
	if _, err := c.exec.LookPath(c.bin); err != nil {
		return fmt.Errorf("editor %s not found: %w", c.bin, err)
	}
	args := make([]string, 0, len(c.args)+1)
	args = append(args, c.args...)
	args = append(args, path)
	if err := c.exec.Start(c.bin, args...); err != nil {
		return fmt.Errorf("starting %s: %w", c.bin, err)
	}
	return nil
}
