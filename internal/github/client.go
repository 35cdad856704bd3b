package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v73/github"
)

// Client defines the three outbound operations a triggered review needs, in
// the order they run: a best-effort reaction on the triggering comment, the
// authoritative pending acknowledgment on the commit, and the repository
// dispatch that starts the downstream job.
type Client interface {
	CreateReaction(ctx context.Context, owner, repo string, commentID int64, content string) error
	CreatePendingComment(ctx context.Context, owner, repo, commitSHA, body string) error
	Dispatch(ctx context.Context, owner, repo, eventType string, payload any) error
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewClient wraps the official go-github client in the focused Client
// interface used by the review pipeline.
func NewClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// CreateReaction attaches a reaction to the triggering commit comment.
func (g *gitHubClient) CreateReaction(ctx context.Context, owner, repo string, commentID int64, content string) error {
	_, _, err := g.client.Reactions.CreateCommentReaction(ctx, owner, repo, commentID, content)
	if err != nil {
		g.logger.Warn("failed to create comment reaction",
			"owner", owner, "repo", repo, "comment_id", commentID, "error", err)
	}
	return err
}

// CreatePendingComment posts the pending acknowledgment as a commit comment.
func (g *gitHubClient) CreatePendingComment(ctx context.Context, owner, repo, commitSHA, body string) error {
	comment := &github.RepositoryComment{Body: &body}
	_, _, err := g.client.Repositories.CreateComment(ctx, owner, repo, commitSHA, comment)
	if err != nil {
		g.logger.Error("failed to create commit comment",
			"owner", owner, "repo", repo, "sha", commitSHA, "error", err)
		return fmt.Errorf("failed to create commit comment on %s/%s@%s: %w", owner, repo, commitSHA, err)
	}
	return nil
}

// Dispatch forwards a repository_dispatch event carrying payload to the
// downstream workflow.
func (g *gitHubClient) Dispatch(ctx context.Context, owner, repo, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch payload: %w", err)
	}
	clientPayload := json.RawMessage(raw)

	_, _, err = g.client.Repositories.Dispatch(ctx, owner, repo, github.DispatchRequestOptions{
		EventType:     eventType,
		ClientPayload: &clientPayload,
	})
	if err != nil {
		g.logger.Error("failed to send repository dispatch",
			"owner", owner, "repo", repo, "event_type", eventType, "error", err)
		return fmt.Errorf("failed to dispatch %q to %s/%s: %w", eventType, owner, repo, err)
	}
	return nil
}
