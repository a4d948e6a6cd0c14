package ports

import "context"

type TicketService interface {
	// Open files a ticket and relays it to the admins. Returns the ticket id.
	Open(ctx context.Context, telegramID int64, username, message string) (int64, error)
}

// BroadcastReport is the only outcome a broadcast has, a tally. Partial
// completion is expected, never an error for the batch.
type BroadcastReport struct {
	Sent   int
	Failed int
}

type BroadcastService interface {
	Send(ctx context.Context, text string) (BroadcastReport, error)
}
