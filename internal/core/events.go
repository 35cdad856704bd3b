// Package core defines the domain types shared across the application: the
// internal view of an inbound commit-comment event, the parsed review options,
// and the outcome taxonomy the webhook handler maps to HTTP responses.
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v73/github"
)

// ErrNotActionable marks commit-comment events that are well formed but should
// be ignored without error (wrong action, empty body, bot author, and so on).
var ErrNotActionable = errors.New("event not actionable")

// ReviewRequest is the internal representation of one triggered review. It is
// built once per webhook delivery and forwarded verbatim as the repository
// dispatch payload; nothing in it outlives the request.
type ReviewRequest struct {
	RepoOwner    string `json:"-"`
	RepoName     string `json:"-"`
	RepoFullName string `json:"repository"`
	CommitSHA    string `json:"commit_sha"`
	CommentID    int64  `json:"comment_id"`
	CommentBody  string `json:"comment_body"`
	Commenter    string `json:"commenter"`

	InstallationID int64 `json:"-"`

	Options ReviewOptions `json:"options"`
}

// EventFromCommitComment transforms a raw GitHub CommitCommentEvent into the
// application's internal ReviewRequest. It acts as an anti-corruption layer:
// only freshly created comments with a body and a commit id pass, and comments
// written by bot accounts (login ending in botSuffix) are rejected so the app
// can never be re-triggered by its own output.
//
// The installation id is carried through unchecked; whether it is required
// depends on how far the delivery gets, so the handler guards it separately.
func EventFromCommitComment(event *github.CommitCommentEvent, botSuffix string) (*ReviewRequest, error) {
	if event.GetAction() != "created" {
		return nil, fmt.Errorf("%w: action is %q", ErrNotActionable, event.GetAction())
	}

	comment := event.GetComment()
	if strings.TrimSpace(comment.GetBody()) == "" {
		return nil, fmt.Errorf("%w: comment body is empty", ErrNotActionable)
	}
	if comment.GetCommitID() == "" {
		return nil, fmt.Errorf("%w: comment carries no commit id", ErrNotActionable)
	}

	login := comment.GetUser().GetLogin()
	if botSuffix != "" && strings.HasSuffix(login, botSuffix) {
		return nil, fmt.Errorf("%w: comment author %q is a bot", ErrNotActionable, login)
	}

	repo := event.GetRepo()
	if repo.GetFullName() == "" || repo.GetOwner().GetLogin() == "" || repo.GetName() == "" {
		return nil, fmt.Errorf("%w: repository information is missing", ErrNotActionable)
	}

	return &ReviewRequest{
		RepoOwner:      repo.GetOwner().GetLogin(),
		RepoName:       repo.GetName(),
		RepoFullName:   repo.GetFullName(),
		CommitSHA:      comment.GetCommitID(),
		CommentID:      comment.GetID(),
		CommentBody:    comment.GetBody(),
		Commenter:      login,
		InstallationID: event.GetInstallation().GetID(),
	}, nil
}

// ShortSHA returns the first seven characters of the commit id, the length
// GitHub itself abbreviates to.
func (r *ReviewRequest) ShortSHA() string {
	if len(r.CommitSHA) <= 7 {
		return r.CommitSHA
	}
	return r.CommitSHA[:7]
}
