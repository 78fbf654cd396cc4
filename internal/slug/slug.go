// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slug derives URL- and filesystem-safe identifiers from free text.
package slug

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify lowercases s and replaces every maximal run of characters outside
// [a-z0-9] with a single hyphen, dropping runs at either end. The result only
// contains [a-z0-9-], never has a leading, trailing, or doubled hyphen, and
// Slugify(Slugify(s)) == Slugify(s). Text with no ASCII letters or digits
// yields "".
func Slugify(s string) string {
	// A Caser carries state, so one is built per call.
	lower := cases.Lower(language.Und).String(s)

	var b strings.Builder
	b.Grow(len(lower))
	gap := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	return b.String()
}

// Valid reports whether s is a well-formed, non-empty slug.
func Valid(s string) bool {
	return s != "" && Slugify(s) == s
}
