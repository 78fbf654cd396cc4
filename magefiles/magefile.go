//go:build mage

// Package main contains Mage build targets for dossier developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/nevinshine/research-dossier/internal/catalog"
)

const (
	binDir  = "bin"
	binName = "dossier"
	cmdPkg  = "./cmd/dossier"
)

// Init creates the content directory of every research track.
func Init() error {
	for _, t := range catalog.Default().Tracks() {
		if err := os.MkdirAll(t.Dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", t.Dir, err)
		}
		fmt.Printf("  %s  %s\n", t.Key, t.Dir)
	}
	fmt.Println("Track directories initialized.")
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Build compiles the CLI binary into bin/ after the tests pass.
func Build() error {
	mg.Deps(Test)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + gitVersion()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Stats prints Go production/test line counts and the number of logs and
// words filed per track.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)

	for _, t := range catalog.Default().Tracks() {
		logs, words, err := countLogWords(t.Dir)
		if err != nil {
			return err
		}
		fmt.Printf("%-30s %4d logs %7d words\n", t.Name+":", logs, words)
	}
	return nil
}

// gitVersion describes HEAD, or "dev" outside a git checkout.
func gitVersion() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || v == "" {
		return "dev"
	}
	return v
}

// countGoLines counts non-blank lines in Go files under root, split into
// production and _test.go files.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), "_") || info.Name() == "bin" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		n, err := nonBlankLines(path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}

func nonBlankLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n, sc.Err()
}

// countLogWords counts the Markdown logs in dir and the words they contain.
// A missing directory counts as empty.
func countLogWords(dir string) (logs, words int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return 0, 0, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		logs++
		words += len(strings.Fields(string(data)))
	}
	return logs, words, nil
}
