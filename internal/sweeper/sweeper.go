// Package sweeper reconciles time-based subscription transitions. The sweep
// is level-triggered: each cycle re-evaluates absolute state, so a missed
// cycle self-heals on the next run at the cost of up to one interval of delay.
package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const reminderHorizon = 72 * time.Hour

type Sweeper struct {
	ledger   ports.LedgerService
	notifier ports.Notifier
	channel  ports.ChannelControl
	log      *zap.SugaredLogger

	cron *cron.Cron
	// callTimeout bounds each outward call so one slow recipient cannot
	// serialize the whole scan.
	callTimeout time.Duration
	now         func() time.Time
}

func New(
	ledger ports.LedgerService,
	notifier ports.Notifier,
	channel ports.ChannelControl,
	log *zap.SugaredLogger,
) *Sweeper {
	return &Sweeper{
		ledger:      ledger,
		notifier:    notifier,
		channel:     channel,
		log:         log,
		callTimeout: 15 * time.Second,
		now:         time.Now,
	}
}

// Start schedules recurring sweeps; schedule accepts cron syntax or
// "@every 30m" descriptors.
func (s *Sweeper) Start(schedule string) error {
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := c.AddFunc(schedule, func() {
		s.RunCycle(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule sweep %q: %w", schedule, err)
	}
	c.Start()
	s.cron = c
	s.log.Infow("sweeper scheduled", "schedule", schedule)
	return nil
}

// Stop waits for a running cycle to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// RunCycle performs the two independent scans of one sweep.
func (s *Sweeper) RunCycle(ctx context.Context) {
	now := s.now().UTC()

	if err := s.expiryScan(ctx, now); err != nil {
		s.log.Errorw("expiry scan failed", "err", err)
	}
	if err := s.reminderScan(ctx, now); err != nil {
		s.log.Errorw("reminder scan failed", "err", err)
	}
}

// expiryScan moves every overdue active user to expired, then best-effort
// revokes channel access and notifies. One user's failure never aborts the
// scan for the rest.
func (s *Sweeper) expiryScan(ctx context.Context, now time.Time) error {
	due, err := s.ledger.ListExpiredDue(ctx, now)
	if err != nil {
		return fmt.Errorf("list expired: %w", err)
	}

	for _, u := range due {
		changed, err := s.ledger.Expire(ctx, u.TelegramID)
		if err != nil {
			s.log.Errorw("expire failed", "telegram_id", u.TelegramID, "err", err)
			continue
		}
		if !changed {
			// Someone else already expired this user; no side effects owed.
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
		if err := s.channel.Revoke(callCtx, u.TelegramID); err != nil {
			s.log.Warnw("channel revoke failed", "telegram_id", u.TelegramID, "err", err)
		}
		cancel()

		callCtx, cancel = context.WithTimeout(ctx, s.callTimeout)
		if err := s.notifier.SendText(callCtx, u.TelegramID,
			"❌ Your subscription expired. Use /start to renew."); err != nil {
			s.log.Warnw("expiry notice failed", "telegram_id", u.TelegramID, "err", err)
		}
		cancel()
	}
	return nil
}

// reminderScan notifies users whose window closes within the horizon, once
// per window: the persisted latch is only set after a successful send, and a
// set latch is never re-notified even across restarts.
func (s *Sweeper) reminderScan(ctx context.Context, now time.Time) error {
	due, err := s.ledger.ListReminderDue(ctx, now, reminderHorizon)
	if err != nil {
		return fmt.Errorf("list reminder due: %w", err)
	}

	for _, u := range due {
		if u.EndAt == nil {
			continue
		}
		days := daysLeft(now, *u.EndAt)
		text := fmt.Sprintf("⏳ Your subscription expires in ~%d day%s. Renew via /start.",
			days, plural(days))

		callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
		err := s.notifier.SendText(callCtx, u.TelegramID, text)
		cancel()
		if err != nil {
			// Leave the latch unset so the next cycle retries.
			s.log.Warnw("reminder failed", "telegram_id", u.TelegramID, "err", err)
			continue
		}

		if err := s.ledger.MarkReminded(ctx, u.TelegramID); err != nil {
			s.log.Errorw("mark reminded failed", "telegram_id", u.TelegramID, "err", err)
		}
	}
	return nil
}

func daysLeft(now, end time.Time) int {
	d := int(end.Sub(now).Hours() / 24)
	if d < 1 {
		d = 1
	}
	return d
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
