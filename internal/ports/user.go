package ports

import (
	"context"
	"time"
)

// SubStatus values a user record can carry.
const (
	StatusNone    = "none"
	StatusActive  = "active"
	StatusExpired = "expired"
)

type User struct {
	TelegramID   int64      `json:"telegram_id"`
	Username     string     `json:"username"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	PlanKey      *string    `json:"plan_key"`
	SelectedPlan *string    `json:"selected_plan"`
	StartAt      *time.Time `json:"start_at"`
	EndAt        *time.Time `json:"end_at"`
	Status       string     `json:"status"`
	Reminded3d   bool       `json:"reminded_3d"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Profile holds the identity fields refreshed on every contact.
type Profile struct {
	Username  string
	FirstName string
	LastName  string
}

type UserRepo interface {
	// Upsert creates the row with status=none on first contact and only
	// refreshes profile fields afterwards. Subscription fields are never
	// touched here.
	Upsert(ctx context.Context, telegramID int64, p Profile) error

	Get(ctx context.Context, telegramID int64) (*User, error)

	SetSelectedPlan(ctx context.Context, telegramID int64, planKey string) error

	// SetSubscription overwrites the whole window and resets the reminder latch.
	SetSubscription(ctx context.Context, telegramID int64, planKey string, startAt, endAt time.Time) error

	// SetExpired flips status to expired; reports whether a row actually changed.
	SetExpired(ctx context.Context, telegramID int64) (bool, error)

	MarkReminded(ctx context.Context, telegramID int64) error

	// List pages users by telegram_id keyset: rows with id > afterID, ascending.
	List(ctx context.Context, afterID int64, limit int) ([]*User, error)

	ListIDs(ctx context.Context, afterID int64, limit int) ([]int64, error)

	// ListExpiredDue returns active users whose window already closed.
	ListExpiredDue(ctx context.Context, asOf time.Time) ([]*User, error)

	// ListReminderDue returns active, un-reminded users whose window closes
	// within the horizon.
	ListReminderDue(ctx context.Context, asOf time.Time, horizon time.Duration) ([]*User, error)

	CountByStatus(ctx context.Context, status string) (int, error)
	Count(ctx context.Context) (int, error)
}
