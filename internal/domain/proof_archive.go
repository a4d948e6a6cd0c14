package domain

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
)

type proofArchive struct {
	client ports.S3Client
}

func NewProofArchive(client ports.S3Client) ports.ProofArchive {
	return &proofArchive{client: client}
}

// objectKey layout: <telegram_id>/<date>/<payment_id>.jpg
func (a *proofArchive) objectKey(telegramID int64, paymentID string) string {
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%d/%s/%s.jpg", telegramID, date, paymentID)
}

func (a *proofArchive) SaveProof(
	ctx context.Context,
	telegramID int64,
	paymentID string,
	r io.Reader,
	contentType string,
) (string, error) {
	if paymentID == "" {
		return "", fmt.Errorf("paymentID required")
	}

	key := a.objectKey(telegramID, paymentID)

	// size = -1 → the client streams and sizes the object itself
	return a.client.PutObject(ctx, key, r, -1, contentType)
}
