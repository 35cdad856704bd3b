package core

import "net/http"

// Outcome is the terminal state of one webhook delivery. Every delivery ends in
// exactly one outcome; there are no retries inside a single request.
type Outcome string

const (
	// OutcomeCompleted means the full sequence ran: reaction, pending comment,
	// downstream dispatch.
	OutcomeCompleted Outcome = "completed"
	// OutcomeIgnored means the delivery was well formed but not actionable.
	// This is the expected result for most webhook traffic, not an error.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeUnauthorized means the payload signature did not verify.
	OutcomeUnauthorized Outcome = "unauthorized"
	// OutcomeBadRequest means the payload was missing required context
	// (no installation id) and retrying the same delivery cannot succeed.
	OutcomeBadRequest Outcome = "bad_request"
	// OutcomeServerError means a downstream GitHub call failed after the
	// delivery was accepted; re-sending the trigger comment is the recovery.
	OutcomeServerError Outcome = "server_error"
)

// HTTPStatus maps an outcome to the status code returned to GitHub. Ignored
// and Completed share 200 deliberately; they differ only in body text.
func (o Outcome) HTTPStatus() int {
	switch o {
	case OutcomeCompleted, OutcomeIgnored:
		return http.StatusOK
	case OutcomeUnauthorized:
		return http.StatusUnauthorized
	case OutcomeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
