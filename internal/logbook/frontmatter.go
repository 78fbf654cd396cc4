// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logbook

import (
	"errors"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/nevinshine/research-dossier/pkg/types"
)

const delimiter = "---"

// ErrNoFrontMatter is returned when a document does not open with a "---"
// line or never closes the block.
var ErrNoFrontMatter = errors.New("no front-matter block")

// Split separates a Markdown document into its front-matter block (without
// delimiters) and the body that follows the closing delimiter.
func Split(data []byte) (front, body string, err error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.SplitAfter(text, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\n") != delimiter {
		return "", "", fmt.Errorf("%w: missing opening %q", ErrNoFrontMatter, delimiter)
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\n") == delimiter {
			return strings.Join(lines[1:i], ""), strings.Join(lines[i+1:], ""), nil
		}
	}
	return "", "", fmt.Errorf("%w: missing closing %q", ErrNoFrontMatter, delimiter)
}

// Parse decodes the front-matter of a log document.
func Parse(data []byte) (*types.FrontMatter, error) {
	front, _, err := Split(data)
	if err != nil {
		return nil, err
	}
	var fm types.FrontMatter
	if err := yaml.Unmarshal([]byte(front), &fm); err != nil {
		return nil, fmt.Errorf("parsing front-matter: %w", err)
	}
	return &fm, nil
}
