package core

// ReviewMode selects how much of the commit the downstream job looks at.
type ReviewMode string

const (
	// ModeDiff reviews only the lines changed by the commit.
	ModeDiff ReviewMode = "diff"
	// ModeFull reviews the complete files touched by the commit.
	ModeFull ReviewMode = "full"
)

// Commit-count bounds for the "last N commits" option.
const (
	MinCommits = 1
	MaxCommits = 50
)

// ReviewOptions is the options vector extracted from the text that follows a
// trigger phrase. Its zero value is not meaningful; use DefaultOptions.
type ReviewOptions struct {
	Mode     ReviewMode `json:"mode"`
	Language string     `json:"language"`
	// Commits is how many trailing commits the diff should span.
	Commits int `json:"commits"`
}

// DefaultOptions returns the options used when a trigger carries no recognized
// tokens. defaultLanguage falls back to the primary supported language if empty.
func DefaultOptions(defaultLanguage string) ReviewOptions {
	if defaultLanguage == "" {
		defaultLanguage = DefaultLanguage
	}
	return ReviewOptions{
		Mode:     ModeDiff,
		Language: defaultLanguage,
		Commits:  MinCommits,
	}
}
