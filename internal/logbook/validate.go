// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logbook

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nevinshine/research-dossier/internal/slug"
	"github.com/nevinshine/research-dossier/pkg/types"
)

//go:embed schema/frontmatter.schema.json
var schemaBytes []byte

const schemaName = "frontmatter.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Issue is one problem found in a log file.
type Issue struct {
	// Field is the front-matter key at fault, or "" for the whole file.
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
	Message string `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return i.Field + ": " + i.Message
}

// Report lists the issues found in one log file.
type Report struct {
	Track  types.Track `json:"track" yaml:"track"`
	Path   string      `json:"path" yaml:"path"`
	Issues []Issue     `json:"issues" yaml:"issues"`
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaName, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaName)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks a front-matter block (YAML without delimiters) against
// the log schema. The error return is for YAML that does not parse or a
// broken schema; schema violations come back as issues.
func Validate(front string) ([]Issue, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal([]byte(front), &raw); err != nil {
		return nil, fmt.Errorf("parsing front-matter: %w", err)
	}
	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	var issues []Issue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		issues = append(issues, Issue{Message: ve.Error()})
	}
	return issues, nil
}

// collectIssues walks the error tree and keeps the leaves.
func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}
	if ve.ErrorKind == nil {
		return
	}
	*issues = append(*issues, Issue{
		Field:   strings.Join(ve.InstanceLocation, "/"),
		Message: ve.ErrorKind.LocalizedString(printer),
	})
}

// normalizeYAML converts YAML-decoded values into JSON-compatible ones.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	case time.Time:
		// Only explicitly tagged timestamps decode to time.Time.
		if val.Equal(val.Truncate(24 * time.Hour)) {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	default:
		return val
	}
}

// CheckFile validates one log document. The filename must be a slug and the
// front-matter must parse and satisfy the schema.
func CheckFile(path string, data []byte) []Issue {
	var issues []Issue
	if stem := strings.TrimSuffix(filepath.Base(path), logExt); !slug.Valid(stem) {
		issues = append(issues, Issue{Message: fmt.Sprintf("filename %q is not a slug", filepath.Base(path))})
	}

	front, _, err := Split(data)
	if err != nil {
		return append(issues, Issue{Message: err.Error()})
	}
	schemaIssues, err := Validate(front)
	if err != nil {
		return append(issues, Issue{Message: err.Error()})
	}
	return append(issues, schemaIssues...)
}

// Check validates every log under the given tracks and returns a report for
// each file that has issues. An empty result means all logs are valid.
func Check(fs afero.Fs, root string, tracks []types.Track) ([]Report, error) {
	var reports []Report
	for _, t := range tracks {
		files, err := LogFiles(fs, filepath.Join(root, t.Dir))
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			data, err := afero.ReadFile(fs, f)
			if err != nil {
				reports = append(reports, Report{Track: t, Path: f, Issues: []Issue{{Message: err.Error()}}})
				continue
			}
			if issues := CheckFile(f, data); len(issues) > 0 {
				reports = append(reports, Report{Track: t, Path: f, Issues: issues})
			}
		}
	}
	return reports, nil
}
