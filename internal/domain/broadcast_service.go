package domain

import (
	"context"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	"go.uber.org/zap"
)

const broadcastPage = 500

type BroadcastService struct {
	users    ports.UserRepo
	notifier ports.Notifier
	log      *zap.SugaredLogger

	// sendTimeout bounds each individual send so one unreachable recipient
	// cannot stall the batch.
	sendTimeout time.Duration
	// pause between sends keeps us under the transport's rate limits.
	pause time.Duration
}

func NewBroadcastService(users ports.UserRepo, notifier ports.Notifier, log *zap.SugaredLogger) *BroadcastService {
	return &BroadcastService{
		users:       users,
		notifier:    notifier,
		log:         log,
		sendTimeout: 10 * time.Second,
		pause:       50 * time.Millisecond,
	}
}

// Send is a sequence of independent best-effort sends, not a transaction.
// Partial completion is the expected outcome, reported as a tally.
func (s *BroadcastService) Send(ctx context.Context, text string) (ports.BroadcastReport, error) {
	var report ports.BroadcastReport
	var after int64

	for {
		ids, err := s.users.ListIDs(ctx, after, broadcastPage)
		if err != nil {
			// Listing is the only hard failure: without recipients there is
			// no batch to degrade.
			return report, err
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			callCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
			err := s.notifier.SendText(callCtx, id, text)
			cancel()

			if err != nil {
				report.Failed++
				s.log.Debugw("broadcast send failed", "telegram_id", id, "err", err)
			} else {
				report.Sent++
			}

			if s.pause > 0 {
				time.Sleep(s.pause)
			}
		}
		after = ids[len(ids)-1]
	}

	s.log.Infow("broadcast done", "sent", report.Sent, "failed", report.Failed)
	return report, nil
}
