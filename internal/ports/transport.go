package ports

import "context"

// Notifier is the outbound side of the chat transport. Every call is
// best-effort from the caller's point of view: errors are returned so the
// caller can log them, but they never abort the surrounding operation.
type Notifier interface {
	SendText(ctx context.Context, telegramID int64, text string) error
	SendPhoto(ctx context.Context, telegramID int64, fileID, caption string) error

	// NotifyProof shows the proof to every configured admin together with the
	// approve/deny affordance for the payment.
	NotifyProof(ctx context.Context, p *Payment, planName string) error

	// NotifyAdmins fans a plain text out to every configured admin.
	NotifyAdmins(ctx context.Context, text string) error
}

// ChannelControl manages membership of the restricted channel. Both calls are
// best-effort; recorded subscription status stays the source of truth.
type ChannelControl interface {
	// Grant issues a single-use invite link for the user.
	Grant(ctx context.Context, telegramID int64) (inviteLink string, err error)

	// Revoke kicks the user (ban then unban, so they can rejoin later).
	Revoke(ctx context.Context, telegramID int64) error
}
