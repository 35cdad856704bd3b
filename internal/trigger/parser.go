// Package trigger scans free-text commit comments for a configured trigger
// phrase and parses the options that may follow it.
package trigger

import (
	"strings"

	"github.com/chkwon/redpen-app/internal/core"
)

// Match locates a trigger phrase inside a comment body.
type Match struct {
	// Start is the byte offset of the matched phrase.
	Start int
	// Length is the byte length of the matched phrase.
	Length int
}

// End returns the byte offset just past the matched phrase.
func (m Match) End() int { return m.Start + m.Length }

// Find scans body for the first phrase, in phrase-list order, that occurs as a
// case-insensitive substring. The phrase order is authoritative: when two
// phrases could both match, the one listed first wins, which lets legacy
// aliases coexist with the current phrase without ambiguity.
//
// The second return value distinguishes "no trigger" from "trigger with no
// options"; callers must not infer absence from default options.
func Find(body string, phrases []string) (Match, bool) {
	for _, phrase := range phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		// Byte-windowed EqualFold keeps offsets stable even when the body
		// contains characters whose lowercase form has a different length.
		for i := 0; i+len(phrase) <= len(body); i++ {
			if strings.EqualFold(body[i:i+len(phrase)], phrase) {
				return Match{Start: i, Length: len(phrase)}, true
			}
		}
	}
	return Match{}, false
}

// ParseOptions tokenizes the text strictly after the matched phrase and folds
// it into a ReviewOptions. The vocabulary is fixed: the literal "full" selects
// full-file mode, a supported language code selects the output language, and a
// decimal number within the commit bounds sets the commit count. Unrecognized
// tokens are ignored and repeated tokens of the same category overwrite each
// other, so noisy or duplicated options never fail the parse.
func ParseOptions(body string, m Match, defaultLanguage string) core.ReviewOptions {
	opts := core.DefaultOptions(defaultLanguage)

	rest := ""
	if m.End() <= len(body) {
		rest = body[m.End():]
	}

	for _, token := range strings.Fields(rest) {
		token = strings.ToLower(token)
		switch {
		case token == "full":
			opts.Mode = core.ModeFull
		case core.IsSupportedLanguage(token):
			opts.Language = token
		default:
			if n, ok := parseCommits(token); ok {
				opts.Commits = n
			}
		}
	}
	return opts
}

// parseCommits parses a token of decimal digits and accepts it only inside the
// [MinCommits, MaxCommits] range. Out-of-range numbers are ignored rather than
// clamped, matching the ignore-unknown policy for every other token.
func parseCommits(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	n := 0
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n > core.MaxCommits {
			return 0, false
		}
	}
	if n < core.MinCommits {
		return 0, false
	}
	return n, true
}
