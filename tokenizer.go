package tokendist

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// newDefaultTokenizer builds the default Tokenizer from a compiled
// split regex and an optional locale. A nil locale disables lowercasing
// entirely.
//
// A cases.Caser is stateful and not safe for concurrent use, so it must
// not be captured once and shared across calls: Engine.Distance (and
// thus this tokenizer) is called concurrently by internal/batch's
// worker pool, so a fresh Caser is built on every invocation instead.
func newDefaultTokenizer(split *regexp.Regexp, locale *language.Tag) Tokenizer {
	lowercase := locale != nil
	return func(s string) []string {
		if s == "" {
			return nil
		}
		if lowercase {
			s = cases.Lower(*locale).String(s)
		}
		s = trimMatches(s, split)
		if s == "" {
			return nil
		}
		parts := split.Split(s, -1)
		tokens := parts[:0]
		for _, p := range parts {
			if p != "" {
				tokens = append(tokens, p)
			}
		}
		return tokens
	}
}

// trimMatches strips a leading and a trailing match of re from s,
// leaving interior matches untouched so they still act as split points.
func trimMatches(s string, re *regexp.Regexp) string {
	if loc := re.FindStringIndex(s); loc != nil && loc[0] == 0 {
		s = s[loc[1]:]
	}
	locs := re.FindAllStringIndex(s, -1)
	if n := len(locs); n > 0 {
		last := locs[n-1]
		if last[1] == len(s) {
			s = s[:last[0]]
		}
	}
	return s
}
