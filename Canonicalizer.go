package main

import (
	"regexp"
	"strings"
	"unicode"
)

// Canonicalizer turns header titles and expression identifiers into the same
// lookup name: lower case, runs of other characters folded to a single underscore.
type Canonicalizer struct {
	nonWordRegex *regexp.Regexp
}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{
		nonWordRegex: regexp.MustCompile(`[^\p{L}\p{N}_]+`),
	}
}

func (c *Canonicalizer) Canonicalize(s string) string {
	s = c.nonWordRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "_")
	s = strings.Trim(s, "_")

	// identifiers can't start with a digit
	if s != "" && unicode.IsDigit([]rune(s)[0]) {
		s = "_" + s
	}
	return s
}
