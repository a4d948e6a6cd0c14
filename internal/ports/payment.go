package ports

import (
	"context"
	"time"
)

const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentDenied   = "denied"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDeny    Decision = "deny"
)

type Payment struct {
	ID          string     `json:"id"`
	TelegramID  int64      `json:"telegram_id"`
	PlanKey     string     `json:"plan_key"`
	ProofFileID string     `json:"proof_file_id"`
	ProofURL    *string    `json:"proof_url"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	DecidedAt   *time.Time `json:"decided_at"`
	DecidedBy   *int64     `json:"decided_by"`
}

type PaymentRepo interface {
	Create(ctx context.Context, p *Payment) error

	Get(ctx context.Context, id string) (*Payment, error)

	// Decide transitions pending → status in a single conditional update.
	// Returns false when the row was not in pending (or does not exist);
	// that single write is the only arbiter of the winning decision.
	Decide(ctx context.Context, id, status string, actor int64, at time.Time) (bool, error)

	// SetProofURL records the archive location; best-effort metadata.
	SetProofURL(ctx context.Context, id, url string) error

	// ListPending pages oldest-first: rows created after the cursor.
	ListPending(ctx context.Context, after time.Time, limit int) ([]*Payment, error)

	CountPending(ctx context.Context) (int, error)
}
