package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
)

type ticketRepo struct {
	db *sql.DB
}

func NewTicketRepo(db *sql.DB) ports.TicketRepo {
	return &ticketRepo{db: db}
}

func (r *ticketRepo) Create(ctx context.Context, telegramID int64, message string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO tickets (telegram_id, message, status, created_at)
		VALUES ($1, $2, 'open', $3)
		RETURNING id
	`, telegramID, message, time.Now().UTC()).Scan(&id)
	return id, err
}
