package ports

import (
	"context"
	"time"
)

// DecisionResult is what a terminal decision produced, for rendering.
type DecisionResult struct {
	Payment *Payment
	// Window is set on approval only.
	Window *Window
	// InviteLink is set when channel access was granted; empty means the
	// grant failed and was logged (it never rolls back the approval).
	InviteLink string
}

type PaymentService interface {
	// Submit records a pending payment for a validated plan key and notifies
	// the admins with the proof. Returns the new payment id.
	Submit(ctx context.Context, telegramID int64, planKey, proofFileID string) (string, error)

	// Decide applies exactly one terminal transition; concurrent calls on the
	// same payment resolve to one winner, the loser gets ErrAlreadyDecided.
	Decide(ctx context.Context, paymentID string, d Decision, actor int64) (*DecisionResult, error)

	// ListPending pages oldest-first from the created-at cursor; zero time
	// starts at the beginning.
	ListPending(ctx context.Context, after time.Time, limit int) ([]*Payment, error)
}
