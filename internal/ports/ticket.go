package ports

import (
	"context"
	"time"
)

// Tickets only ever hold status "open": replies go out over the transport
// directly and no closure lifecycle is modelled.
type Ticket struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type TicketRepo interface {
	Create(ctx context.Context, telegramID int64, message string) (int64, error)
}
