// Package review runs the authenticated tail of a triggered delivery: token
// exchange, acknowledgment, and the downstream repository dispatch.
package review

import (
	"context"
	"log/slog"

	"github.com/chkwon/redpen-app/internal/config"
	"github.com/chkwon/redpen-app/internal/core"
	"github.com/chkwon/redpen-app/internal/github"
)

// Processor executes the network sequence for one triggered review request.
type Processor interface {
	Process(ctx context.Context, req *core.ReviewRequest) core.Outcome
}

type processor struct {
	cfg     *config.Config
	clients github.ClientFactory
	logger  *slog.Logger
}

// NewProcessor creates the processor used by the webhook handler.
func NewProcessor(cfg *config.Config, clients github.ClientFactory, logger *slog.Logger) Processor {
	return &processor{cfg: cfg, clients: clients, logger: logger}
}

// Process runs strictly in order: mint the installation token, attach the
// reaction, post the pending comment, send the dispatch. The pending comment
// always precedes the dispatch so the commenter's confirmation can never
// arrive after the downstream job's own output. There are no retries; any
// authoritative failure ends the delivery as a server error and the user
// recovers by re-sending the trigger comment.
func (p *processor) Process(ctx context.Context, req *core.ReviewRequest) core.Outcome {
	client, token, err := p.clients.ClientFor(ctx, req.InstallationID)
	if err != nil {
		p.logger.Error("installation token exchange failed",
			"repo", req.RepoFullName, "installation_id", req.InstallationID, "error", err)
		return core.OutcomeServerError
	}
	p.logger.Debug("installation token minted",
		"repo", req.RepoFullName, "expires_at", token.ExpiresAt)

	// The reaction is cosmetic: a failure is logged inside the client and the
	// delivery continues.
	if req.CommentID != 0 {
		_ = client.CreateReaction(ctx, req.RepoOwner, req.RepoName, req.CommentID, p.cfg.GitHub.ReactionContent)
	}

	pending := github.PendingMessage(req)
	if err := client.CreatePendingComment(ctx, req.RepoOwner, req.RepoName, req.CommitSHA, pending); err != nil {
		return core.OutcomeServerError
	}

	if err := client.Dispatch(ctx, req.RepoOwner, req.RepoName, p.cfg.GitHub.DispatchEventType, req); err != nil {
		return core.OutcomeServerError
	}

	p.logger.Info("review dispatched",
		"repo", req.RepoFullName,
		"sha", req.ShortSHA(),
		"mode", req.Options.Mode,
		"language", req.Options.Language,
		"commits", req.Options.Commits)
	return core.OutcomeCompleted
}
