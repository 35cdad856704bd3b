// Package handler provides the HTTP handlers for the redpen webhook service.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-github/v73/github"

	"github.com/chkwon/redpen-app/internal/config"
	"github.com/chkwon/redpen-app/internal/core"
	"github.com/chkwon/redpen-app/internal/review"
	"github.com/chkwon/redpen-app/internal/trigger"
)

// WebhookHandler processes incoming commit-comment webhooks from GitHub. Each
// delivery walks a fixed sequence of checks; the first failing check decides
// the terminal outcome and nothing later runs.
type WebhookHandler struct {
	cfg       *config.Config
	processor review.Processor
	recorder  core.DeliveryRecorder
	logger    *slog.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(cfg *config.Config, processor review.Processor, recorder core.DeliveryRecorder, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		cfg:       cfg,
		processor: processor,
		recorder:  recorder,
		logger:    logger,
	}
}

// Handle processes one GitHub webhook delivery.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	// ValidatePayload recomputes the HMAC-SHA256 over the raw body and
	// compares in constant time; a missing signature header fails closed.
	// Neither the secret nor the computed digest may appear in logs.
	payload, err := github.ValidatePayload(r, []byte(h.cfg.GitHub.WebhookSecret))
	if err != nil {
		h.logger.Warn("rejected webhook with invalid signature", "error", err)
		h.respond(w, core.OutcomeUnauthorized, "Invalid signature")
		return
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		h.logger.Warn("could not parse webhook payload", "type", github.WebHookType(r), "error", err)
		h.respond(w, core.OutcomeBadRequest, "Could not parse webhook")
		return
	}

	switch e := event.(type) {
	case *github.CommitCommentEvent:
		h.handleCommitComment(w, r, e)
	default:
		h.logger.Debug("ignoring unhandled webhook event type", "type", github.WebHookType(r))
		h.respond(w, core.OutcomeIgnored, "Event type not handled")
	}
}

// handleCommitComment walks a commit-comment delivery through filtering,
// trigger detection, the installation guard, and the review pipeline.
func (h *WebhookHandler) handleCommitComment(w http.ResponseWriter, r *http.Request, event *github.CommitCommentEvent) {
	req, err := core.EventFromCommitComment(event, h.cfg.GitHub.BotSuffix)
	if err != nil {
		h.logger.Debug("ignoring commit comment", "reason", err.Error(), "repo", event.GetRepo().GetFullName())
		h.respond(w, core.OutcomeIgnored, "Comment ignored")
		return
	}

	match, found := trigger.Find(req.CommentBody, h.cfg.Review.TriggerPhrases)
	if !found {
		h.logger.Debug("no trigger phrase in comment", "repo", req.RepoFullName, "sha", req.ShortSHA())
		h.record(req, core.OutcomeIgnored, "no trigger phrase")
		h.respond(w, core.OutcomeIgnored, "No trigger phrase")
		return
	}
	req.Options = trigger.ParseOptions(req.CommentBody, match, h.cfg.Review.DefaultLanguage)

	if req.InstallationID == 0 {
		h.logger.Error("triggered comment without installation context", "repo", req.RepoFullName)
		h.record(req, core.OutcomeBadRequest, "missing installation id")
		h.respond(w, core.OutcomeBadRequest, "Missing installation context")
		return
	}

	outcome := h.processor.Process(r.Context(), req)
	switch outcome {
	case core.OutcomeCompleted:
		h.record(req, outcome, "dispatched")
		h.respond(w, outcome, fmt.Sprintf("Review dispatched (mode=%s, language=%s)", req.Options.Mode, req.Options.Language))
	default:
		h.record(req, outcome, "downstream call failed")
		h.respond(w, outcome, "Failed to dispatch review")
	}
}

// respond writes the outcome's status code and a short diagnostic body. The
// body is read by GitHub's delivery log, never by the commenter.
func (h *WebhookHandler) respond(w http.ResponseWriter, outcome core.Outcome, body string) {
	w.WriteHeader(outcome.HTTPStatus())
	_, _ = fmt.Fprint(w, body)
}

// record queues a delivery audit record. Recording is fire-and-forget.
func (h *WebhookHandler) record(req *core.ReviewRequest, outcome core.Outcome, detail string) {
	if h.recorder == nil {
		return
	}
	// Background context: the record outlives the request that produced it.
	h.recorder.Record(context.Background(), &core.Delivery{
		ReceivedAt:   time.Now().UTC(),
		RepoFullName: req.RepoFullName,
		CommitSHA:    req.CommitSHA,
		Commenter:    req.Commenter,
		Outcome:      outcome,
		Detail:       detail,
		Mode:         req.Options.Mode,
		Language:     req.Options.Language,
		Commits:      req.Options.Commits,
	})
}
