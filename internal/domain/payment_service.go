package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/plans"
	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService struct {
	payments ports.PaymentRepo
	ledger   ports.LedgerService
	notifier ports.Notifier
	channel  ports.ChannelControl
	admins   map[int64]bool
	log      *zap.SugaredLogger
	now      func() time.Time
}

func NewPaymentService(
	payments ports.PaymentRepo,
	ledger ports.LedgerService,
	notifier ports.Notifier,
	channel ports.ChannelControl,
	adminIDs []int64,
	log *zap.SugaredLogger,
) *PaymentService {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &PaymentService{
		payments: payments,
		ledger:   ledger,
		notifier: notifier,
		channel:  channel,
		admins:   admins,
		log:      log,
		now:      time.Now,
	}
}

// Submit records a pending payment and shows the proof to the admins.
// The admin notification is best-effort: a failed send leaves the payment in
// the pending queue where the admin panel still lists it.
func (s *PaymentService) Submit(ctx context.Context, telegramID int64, planKey, proofFileID string) (string, error) {
	if planKey == "" {
		return "", ErrNoPlanSelected
	}
	plan, ok := plans.ByKey(planKey)
	if !ok {
		return "", ErrPlanNotFound
	}

	p := &ports.Payment{
		ID:          uuid.NewString(),
		TelegramID:  telegramID,
		PlanKey:     planKey,
		ProofFileID: proofFileID,
		Status:      ports.PaymentPending,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return "", fmt.Errorf("create payment: %w", err)
	}

	if err := s.notifier.NotifyProof(ctx, p, plan.Name); err != nil {
		s.log.Warnw("proof notification failed",
			"payment_id", p.ID,
			"telegram_id", telegramID,
			"err", err,
		)
	}

	s.log.Infow("payment submitted",
		"payment_id", p.ID,
		"telegram_id", telegramID,
		"plan", planKey,
	)
	return p.ID, nil
}

// Decide applies exactly one terminal transition. The conditional update on
// the payment row is the sole arbiter of the winning decision; a double-tap
// or a concurrent opposite decision loses with ErrAlreadyDecided.
func (s *PaymentService) Decide(ctx context.Context, paymentID string, d ports.Decision, actor int64) (*ports.DecisionResult, error) {
	if !s.admins[actor] {
		return nil, ErrNotAuthorized
	}

	var status string
	switch d {
	case ports.DecisionApprove:
		status = ports.PaymentApproved
	case ports.DecisionDeny:
		status = ports.PaymentDenied
	default:
		return nil, fmt.Errorf("unknown decision %q", d)
	}

	won, err := s.payments.Decide(ctx, paymentID, status, actor, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("decide payment %s: %w", paymentID, err)
	}
	if !won {
		p, err := s.payments.Get(ctx, paymentID)
		if err != nil {
			return nil, fmt.Errorf("load payment %s: %w", paymentID, err)
		}
		if p == nil {
			return nil, ErrPaymentNotFound
		}
		return nil, ErrAlreadyDecided
	}

	p, err := s.payments.Get(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("load payment %s: %w", paymentID, err)
	}

	res := &ports.DecisionResult{Payment: p}

	if d == ports.DecisionDeny {
		s.log.Infow("payment denied", "payment_id", paymentID, "actor", actor)
		s.notifyUser(ctx, p.TelegramID,
			"❌ Your payment proof was not approved. Please contact support.")
		return res, nil
	}

	plan, ok := plans.ByKey(p.PlanKey)
	if !ok {
		// The catalog changed underneath a historical submission. The payment
		// stays approved; without a duration there is nothing to activate.
		s.log.Errorw("approved payment references unknown plan",
			"payment_id", paymentID, "plan", p.PlanKey)
		return res, ErrPlanNotFound
	}

	w, err := s.ledger.Activate(ctx, p.TelegramID, p.PlanKey, plan.Days)
	if err != nil {
		return res, fmt.Errorf("activate after approval: %w", err)
	}
	res.Window = &w

	// Channel access is a convenience, not the entitlement record. A failed
	// grant is reported and the approval stands.
	link, err := s.channel.Grant(ctx, p.TelegramID)
	if err != nil {
		s.log.Warnw("channel grant failed",
			"payment_id", paymentID,
			"telegram_id", p.TelegramID,
			"err", err,
		)
	} else {
		res.InviteLink = link
	}

	text := fmt.Sprintf(
		"🎉 Payment approved!\nPlan: %s\nValid till: %s",
		plan.Name,
		w.EndAt.Format("2006-01-02 15:04"),
	)
	if res.InviteLink != "" {
		text += "\n👉 Join: " + res.InviteLink
	}
	s.notifyUser(ctx, p.TelegramID, text)

	s.log.Infow("payment approved",
		"payment_id", paymentID,
		"actor", actor,
		"telegram_id", p.TelegramID,
		"end_at", w.EndAt,
	)
	return res, nil
}

func (s *PaymentService) ListPending(ctx context.Context, after time.Time, limit int) ([]*ports.Payment, error) {
	return s.payments.ListPending(ctx, after, limit)
}

func (s *PaymentService) notifyUser(ctx context.Context, telegramID int64, text string) {
	if err := s.notifier.SendText(ctx, telegramID, text); err != nil {
		s.log.Warnw("user notification failed", "telegram_id", telegramID, "err", err)
	}
}
