package github

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chkwon/redpen-app/internal/core"
)

func TestModeLabel(t *testing.T) {
	tests := []struct {
		name string
		opts core.ReviewOptions
		want string
	}{
		{
			name: "diff mode single commit",
			opts: core.ReviewOptions{Mode: core.ModeDiff, Commits: 1},
			want: "Changed lines only",
		},
		{
			name: "diff mode multiple commits",
			opts: core.ReviewOptions{Mode: core.ModeDiff, Commits: 5},
			want: "Changed lines (last 5 commits)",
		},
		{
			name: "full mode",
			opts: core.ReviewOptions{Mode: core.ModeFull, Commits: 1},
			want: "Full file review",
		},
		{
			name: "full mode wins over commit count",
			opts: core.ReviewOptions{Mode: core.ModeFull, Commits: 5},
			want: "Full file review",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModeLabel(tt.opts))
		})
	}
}

func TestPendingMessage(t *testing.T) {
	req := &core.ReviewRequest{
		RepoFullName: "chkwon/paper",
		CommitSHA:    "0123456789abcdef0123456789abcdef01234567",
		Options:      core.ReviewOptions{Mode: core.ModeDiff, Language: "ko", Commits: 1},
	}

	msg := PendingMessage(req)
	assert.Contains(t, msg, "`0123456`")
	assert.Contains(t, msg, "Changed lines only")
	assert.Contains(t, msg, "🇰🇷 Korean")
	assert.NotContains(t, msg, "0123456789abcdef", "full SHA must be abbreviated")
}

func TestPendingMessageIsDeterministic(t *testing.T) {
	req := &core.ReviewRequest{
		CommitSHA: "abc1234",
		Options:   core.ReviewOptions{Mode: core.ModeFull, Language: "ja", Commits: 3},
	}
	assert.Equal(t, PendingMessage(req), PendingMessage(req))
	assert.Contains(t, PendingMessage(req), "🇯🇵 Japanese")
	assert.Contains(t, PendingMessage(req), "Full file review")
}

func TestPendingMessageUnknownLanguageFallsBackToCode(t *testing.T) {
	req := &core.ReviewRequest{
		CommitSHA: "abc1234",
		Options:   core.ReviewOptions{Mode: core.ModeDiff, Language: "xx", Commits: 1},
	}
	assert.Contains(t, PendingMessage(req), "xx")
}
