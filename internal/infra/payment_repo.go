package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
)

type paymentRepo struct {
	db *sql.DB
}

func NewPaymentRepo(db *sql.DB) ports.PaymentRepo {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, p *ports.Payment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (id, telegram_id, plan_key, proof_file_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.TelegramID, p.PlanKey, p.ProofFileID, p.Status, p.CreatedAt)
	return err
}

func (r *paymentRepo) Get(ctx context.Context, id string) (*ports.Payment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, telegram_id, plan_key, proof_file_id, proof_url, status,
		       created_at, decided_at, decided_by
		FROM payments
		WHERE id = $1
	`, id)

	var p ports.Payment
	err := row.Scan(
		&p.ID,
		&p.TelegramID,
		&p.PlanKey,
		&p.ProofFileID,
		&p.ProofURL,
		&p.Status,
		&p.CreatedAt,
		&p.DecidedAt,
		&p.DecidedBy,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Decide is the linearization point for the payment lifecycle: only a row
// still in pending transitions, so exactly one caller wins a race.
func (r *paymentRepo) Decide(ctx context.Context, id, status string, actor int64, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE payments
		SET status = $1, decided_by = $2, decided_at = $3
		WHERE id = $4 AND status = 'pending'
	`, status, actor, at, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *paymentRepo) SetProofURL(ctx context.Context, id, url string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE payments SET proof_url = $1 WHERE id = $2
	`, url, id)
	return err
}

func (r *paymentRepo) ListPending(ctx context.Context, after time.Time, limit int) ([]*ports.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, telegram_id, plan_key, proof_file_id, proof_url, status,
		       created_at, decided_at, decided_by
		FROM payments
		WHERE status = 'pending' AND created_at > $1
		ORDER BY created_at
		LIMIT $2
	`, after, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ports.Payment
	for rows.Next() {
		var p ports.Payment
		if err := rows.Scan(
			&p.ID,
			&p.TelegramID,
			&p.PlanKey,
			&p.ProofFileID,
			&p.ProofURL,
			&p.Status,
			&p.CreatedAt,
			&p.DecidedAt,
			&p.DecidedBy,
		); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *paymentRepo) CountPending(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM payments WHERE status = 'pending'`,
	).Scan(&n)
	return n, err
}
