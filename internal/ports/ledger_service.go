package ports

import (
	"context"
	"time"
)

// Window is the computed subscription period returned by Activate.
type Window struct {
	StartAt time.Time
	EndAt   time.Time
}

type LedgerStats struct {
	TotalUsers      int `json:"total_users"`
	Active          int `json:"active"`
	Expired         int `json:"expired"`
	PendingPayments int `json:"pending_payments"`
}

// LedgerService owns the per-user subscription state machine:
// none → active → expired → active (re-subscription).
type LedgerService interface {
	EnsureUser(ctx context.Context, telegramID int64, p Profile) error

	// Activate overwrites any existing window. Approving a second payment for
	// an already-active user replaces the remaining term rather than stacking
	// it; that is the commercial policy, not an accident.
	Activate(ctx context.Context, telegramID int64, planKey string, days int) (Window, error)

	// Expire is idempotent; reports whether this call did the transition.
	Expire(ctx context.Context, telegramID int64) (bool, error)

	MarkReminded(ctx context.Context, telegramID int64) error

	GetUser(ctx context.Context, telegramID int64) (*User, error)

	SelectPlan(ctx context.Context, telegramID int64, planKey string) error

	Stats(ctx context.Context) (LedgerStats, error)

	ListUsers(ctx context.Context, afterID int64, limit int) ([]*User, error)

	ListExpiredDue(ctx context.Context, asOf time.Time) ([]*User, error)
	ListReminderDue(ctx context.Context, asOf time.Time, horizon time.Duration) ([]*User, error)
}
