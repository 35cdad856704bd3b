package github

import (
	"fmt"
	"strings"

	"github.com/chkwon/redpen-app/internal/core"
)

// ModeLabel renders the human-readable scope label for the resolved options.
func ModeLabel(opts core.ReviewOptions) string {
	if opts.Mode == core.ModeFull {
		return "Full file review"
	}
	if opts.Commits > 1 {
		return fmt.Sprintf("Changed lines (last %d commits)", opts.Commits)
	}
	return "Changed lines only"
}

// PendingMessage renders the acknowledgment comment posted before the
// downstream job runs. It is the only confirmation the commenter sees until
// the review itself arrives, so it states exactly what was requested: the
// scope, the output language with its locale flag, and the short commit id.
func PendingMessage(req *core.ReviewRequest) string {
	lang, ok := core.LookupLanguage(req.Options.Language)
	if !ok {
		lang = core.Language{Code: req.Options.Language, Name: req.Options.Language}
	}

	var sb strings.Builder
	sb.WriteString("🖊️ **Red pen review requested** for `")
	sb.WriteString(req.ShortSHA())
	sb.WriteString("`\n\n")
	fmt.Fprintf(&sb, "- Scope: %s\n", ModeLabel(req.Options))
	fmt.Fprintf(&sb, "- Language: %s %s\n\n", lang.Flag, lang.Name)
	sb.WriteString("The review is running and will be posted here shortly.")
	return sb.String()
}
