package domain

import (
	"context"
	"fmt"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	"go.uber.org/zap"
)

type TicketService struct {
	tickets  ports.TicketRepo
	notifier ports.Notifier
	log      *zap.SugaredLogger
}

func NewTicketService(tickets ports.TicketRepo, notifier ports.Notifier, log *zap.SugaredLogger) *TicketService {
	return &TicketService{tickets: tickets, notifier: notifier, log: log}
}

// Open files the ticket and relays it to the admins. The relay is
// best-effort; the ticket row is the durable part.
func (s *TicketService) Open(ctx context.Context, telegramID int64, username, message string) (int64, error) {
	id, err := s.tickets.Create(ctx, telegramID, message)
	if err != nil {
		return 0, fmt.Errorf("create ticket: %w", err)
	}

	from := username
	if from == "" {
		from = fmt.Sprintf("%d", telegramID)
	}
	text := fmt.Sprintf(
		"📩 Support Ticket #%d\nUser: @%s (%d)\n\n%s",
		id, from, telegramID, message,
	)
	if err := s.notifier.NotifyAdmins(ctx, text); err != nil {
		s.log.Warnw("ticket relay failed", "ticket_id", id, "err", err)
	}

	return id, nil
}
