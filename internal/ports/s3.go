package ports

import (
	"context"
	"io"
)

// S3Client is low-level object storage access.
type S3Client interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) (publicURL string, err error)
}

// ProofArchive keeps a durable copy of submitted payment screenshots.
// Archival is best-effort; the Telegram file id on the payment record is the
// primary proof reference.
type ProofArchive interface {
	SaveProof(ctx context.Context, telegramID int64, paymentID string, r io.Reader, contentType string) (string, error)
}
