package domain

import (
	"context"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
)

// Stubs embed the port interface so only the methods a test exercises need a
// body; calling anything else panics loudly.

type stubUserRepo struct {
	ports.UserRepo
	upsertFn          func(ctx context.Context, telegramID int64, p ports.Profile) error
	getFn             func(ctx context.Context, telegramID int64) (*ports.User, error)
	setSelectedPlanFn func(ctx context.Context, telegramID int64, planKey string) error
	setSubscriptionFn func(ctx context.Context, telegramID int64, planKey string, startAt, endAt time.Time) error
	setExpiredFn      func(ctx context.Context, telegramID int64) (bool, error)
	listIDsFn         func(ctx context.Context, afterID int64, limit int) ([]int64, error)
	countFn           func(ctx context.Context) (int, error)
	countByStatusFn   func(ctx context.Context, status string) (int, error)
}

func (s *stubUserRepo) Upsert(ctx context.Context, telegramID int64, p ports.Profile) error {
	return s.upsertFn(ctx, telegramID, p)
}

func (s *stubUserRepo) Get(ctx context.Context, telegramID int64) (*ports.User, error) {
	return s.getFn(ctx, telegramID)
}

func (s *stubUserRepo) SetSelectedPlan(ctx context.Context, telegramID int64, planKey string) error {
	return s.setSelectedPlanFn(ctx, telegramID, planKey)
}

func (s *stubUserRepo) SetSubscription(ctx context.Context, telegramID int64, planKey string, startAt, endAt time.Time) error {
	return s.setSubscriptionFn(ctx, telegramID, planKey, startAt, endAt)
}

func (s *stubUserRepo) SetExpired(ctx context.Context, telegramID int64) (bool, error) {
	return s.setExpiredFn(ctx, telegramID)
}

func (s *stubUserRepo) ListIDs(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	return s.listIDsFn(ctx, afterID, limit)
}

func (s *stubUserRepo) Count(ctx context.Context) (int, error) {
	return s.countFn(ctx)
}

func (s *stubUserRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	return s.countByStatusFn(ctx, status)
}

type stubPaymentRepo struct {
	ports.PaymentRepo
	createFn       func(ctx context.Context, p *ports.Payment) error
	getFn          func(ctx context.Context, id string) (*ports.Payment, error)
	decideFn       func(ctx context.Context, id, status string, actor int64, at time.Time) (bool, error)
	countPendingFn func(ctx context.Context) (int, error)
}

func (s *stubPaymentRepo) Create(ctx context.Context, p *ports.Payment) error {
	return s.createFn(ctx, p)
}

func (s *stubPaymentRepo) Get(ctx context.Context, id string) (*ports.Payment, error) {
	return s.getFn(ctx, id)
}

func (s *stubPaymentRepo) Decide(ctx context.Context, id, status string, actor int64, at time.Time) (bool, error) {
	return s.decideFn(ctx, id, status, actor, at)
}

func (s *stubPaymentRepo) CountPending(ctx context.Context) (int, error) {
	return s.countPendingFn(ctx)
}

type stubNotifier struct {
	ports.Notifier
	sendTextFn    func(ctx context.Context, telegramID int64, text string) error
	notifyProofFn func(ctx context.Context, p *ports.Payment, planName string) error
}

func (s *stubNotifier) SendText(ctx context.Context, telegramID int64, text string) error {
	if s.sendTextFn == nil {
		return nil
	}
	return s.sendTextFn(ctx, telegramID, text)
}

func (s *stubNotifier) NotifyProof(ctx context.Context, p *ports.Payment, planName string) error {
	if s.notifyProofFn == nil {
		return nil
	}
	return s.notifyProofFn(ctx, p, planName)
}

type stubChannel struct {
	ports.ChannelControl
	grantFn func(ctx context.Context, telegramID int64) (string, error)
}

func (s *stubChannel) Grant(ctx context.Context, telegramID int64) (string, error) {
	if s.grantFn == nil {
		return "", nil
	}
	return s.grantFn(ctx, telegramID)
}

type stubLedger struct {
	ports.LedgerService
	activateFn func(ctx context.Context, telegramID int64, planKey string, days int) (ports.Window, error)
}

func (s *stubLedger) Activate(ctx context.Context, telegramID int64, planKey string, days int) (ports.Window, error) {
	return s.activateFn(ctx, telegramID, planKey, days)
}
