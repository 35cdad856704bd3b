package core

import (
	"context"
	"time"
)

// Delivery is the audit record written for every processed webhook delivery,
// including ignored ones. It records the outcome, never the raw payload.
type Delivery struct {
	ID           int64      `db:"id"`
	ReceivedAt   time.Time  `db:"received_at"`
	RepoFullName string     `db:"repo_full_name"`
	CommitSHA    string     `db:"commit_sha"`
	Commenter    string     `db:"commenter"`
	Outcome      Outcome    `db:"outcome"`
	Detail       string     `db:"detail"`
	Mode         ReviewMode `db:"mode"`
	Language     string     `db:"language"`
	Commits      int        `db:"commits"`
}

// DeliveryRecorder accepts delivery records for asynchronous persistence. It
// decouples the webhook handler from the audit store: recording must never
// block or fail a request.
type DeliveryRecorder interface {
	// Record queues a delivery for persistence. A full queue drops the record;
	// the audit log is best-effort by design.
	Record(ctx context.Context, d *Delivery)
	// Stop flushes queued records and shuts the recorder down.
	Stop()
}
