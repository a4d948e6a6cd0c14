package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/plans"
	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	"go.uber.org/zap"
)

type LedgerService struct {
	users    ports.UserRepo
	payments ports.PaymentRepo
	log      *zap.SugaredLogger
	now      func() time.Time
}

func NewLedgerService(users ports.UserRepo, payments ports.PaymentRepo, log *zap.SugaredLogger) *LedgerService {
	return &LedgerService{
		users:    users,
		payments: payments,
		log:      log,
		now:      time.Now,
	}
}

// EnsureUser is safe under concurrent first contact: the upsert creates the
// row once and only refreshes profile fields on repeat.
func (s *LedgerService) EnsureUser(ctx context.Context, telegramID int64, p ports.Profile) error {
	if err := s.users.Upsert(ctx, telegramID, p); err != nil {
		return fmt.Errorf("ensure user %d: %w", telegramID, err)
	}
	return nil
}

// Activate overwrites the subscription window. A second activation for an
// already-active user replaces the remaining term rather than stacking it.
func (s *LedgerService) Activate(ctx context.Context, telegramID int64, planKey string, days int) (ports.Window, error) {
	start := s.now().UTC()
	end := start.Add(time.Duration(days) * 24 * time.Hour)

	if err := s.users.SetSubscription(ctx, telegramID, planKey, start, end); err != nil {
		return ports.Window{}, fmt.Errorf("activate user %d: %w", telegramID, err)
	}

	s.log.Infow("subscription activated",
		"telegram_id", telegramID,
		"plan", planKey,
		"end_at", end,
	)
	return ports.Window{StartAt: start, EndAt: end}, nil
}

func (s *LedgerService) Expire(ctx context.Context, telegramID int64) (bool, error) {
	changed, err := s.users.SetExpired(ctx, telegramID)
	if err != nil {
		return false, fmt.Errorf("expire user %d: %w", telegramID, err)
	}
	if changed {
		s.log.Infow("subscription expired", "telegram_id", telegramID)
	}
	return changed, nil
}

func (s *LedgerService) MarkReminded(ctx context.Context, telegramID int64) error {
	if err := s.users.MarkReminded(ctx, telegramID); err != nil {
		return fmt.Errorf("mark reminded %d: %w", telegramID, err)
	}
	return nil
}

func (s *LedgerService) GetUser(ctx context.Context, telegramID int64) (*ports.User, error) {
	u, err := s.users.Get(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", telegramID, err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// SelectPlan persists the user's last-chosen plan so a later proof upload can
// be matched to it even across restarts.
func (s *LedgerService) SelectPlan(ctx context.Context, telegramID int64, planKey string) error {
	if _, ok := plans.ByKey(planKey); !ok {
		return ErrPlanNotFound
	}
	if err := s.users.SetSelectedPlan(ctx, telegramID, planKey); err != nil {
		return fmt.Errorf("select plan for %d: %w", telegramID, err)
	}
	return nil
}

// Stats counts by scanning; fine at bot scale, revisit before the user table
// outgrows single-digit millions.
func (s *LedgerService) Stats(ctx context.Context) (ports.LedgerStats, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return ports.LedgerStats{}, fmt.Errorf("count users: %w", err)
	}
	active, err := s.users.CountByStatus(ctx, ports.StatusActive)
	if err != nil {
		return ports.LedgerStats{}, fmt.Errorf("count active: %w", err)
	}
	expired, err := s.users.CountByStatus(ctx, ports.StatusExpired)
	if err != nil {
		return ports.LedgerStats{}, fmt.Errorf("count expired: %w", err)
	}
	pending, err := s.payments.CountPending(ctx)
	if err != nil {
		return ports.LedgerStats{}, fmt.Errorf("count pending payments: %w", err)
	}
	return ports.LedgerStats{
		TotalUsers:      total,
		Active:          active,
		Expired:         expired,
		PendingPayments: pending,
	}, nil
}

func (s *LedgerService) ListUsers(ctx context.Context, afterID int64, limit int) ([]*ports.User, error) {
	return s.users.List(ctx, afterID, limit)
}

func (s *LedgerService) ListExpiredDue(ctx context.Context, asOf time.Time) ([]*ports.User, error) {
	return s.users.ListExpiredDue(ctx, asOf)
}

func (s *LedgerService) ListReminderDue(ctx context.Context, asOf time.Time, horizon time.Duration) ([]*ports.User, error) {
	return s.users.ListReminderDue(ctx, asOf, horizon)
}
