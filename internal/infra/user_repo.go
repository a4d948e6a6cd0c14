package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
)

type userRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) ports.UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Upsert(ctx context.Context, telegramID int64, p ports.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (telegram_id, username, first_name, last_name, status, reminded_3d, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'none', FALSE, $5, $5)
		ON CONFLICT (telegram_id) DO UPDATE SET
			username   = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name  = EXCLUDED.last_name,
			updated_at = EXCLUDED.updated_at
	`, telegramID, p.Username, p.FirstName, p.LastName, time.Now().UTC())
	return err
}

func (r *userRepo) Get(ctx context.Context, telegramID int64) (*ports.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT telegram_id, username, first_name, last_name, plan_key, selected_plan,
		       start_at, end_at, status, reminded_3d, created_at, updated_at
		FROM users
		WHERE telegram_id = $1
	`, telegramID)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *userRepo) SetSelectedPlan(ctx context.Context, telegramID int64, planKey string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET selected_plan = $1, updated_at = $2
		WHERE telegram_id = $3
	`, planKey, time.Now().UTC(), telegramID)
	return err
}

func (r *userRepo) SetSubscription(ctx context.Context, telegramID int64, planKey string, startAt, endAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET plan_key = $1, start_at = $2, end_at = $3,
		    status = 'active', reminded_3d = FALSE, selected_plan = NULL,
		    updated_at = $4
		WHERE telegram_id = $5
	`, planKey, startAt, endAt, time.Now().UTC(), telegramID)
	return err
}

func (r *userRepo) SetExpired(ctx context.Context, telegramID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET status = 'expired', updated_at = $1
		WHERE telegram_id = $2 AND status <> 'expired'
	`, time.Now().UTC(), telegramID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *userRepo) MarkReminded(ctx context.Context, telegramID int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET reminded_3d = TRUE, updated_at = $1
		WHERE telegram_id = $2 AND reminded_3d = FALSE
	`, time.Now().UTC(), telegramID)
	return err
}

func (r *userRepo) List(ctx context.Context, afterID int64, limit int) ([]*ports.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT telegram_id, username, first_name, last_name, plan_key, selected_plan,
		       start_at, end_at, status, reminded_3d, created_at, updated_at
		FROM users
		WHERE telegram_id > $1
		ORDER BY telegram_id
		LIMIT $2
	`, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepo) ListIDs(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT telegram_id
		FROM users
		WHERE telegram_id > $1
		ORDER BY telegram_id
		LIMIT $2
	`, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *userRepo) ListExpiredDue(ctx context.Context, asOf time.Time) ([]*ports.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT telegram_id, username, first_name, last_name, plan_key, selected_plan,
		       start_at, end_at, status, reminded_3d, created_at, updated_at
		FROM users
		WHERE status = 'active' AND end_at IS NOT NULL AND end_at <= $1
		ORDER BY end_at
	`, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepo) ListReminderDue(ctx context.Context, asOf time.Time, horizon time.Duration) ([]*ports.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT telegram_id, username, first_name, last_name, plan_key, selected_plan,
		       start_at, end_at, status, reminded_3d, created_at, updated_at
		FROM users
		WHERE status = 'active' AND reminded_3d = FALSE
		  AND end_at IS NOT NULL AND end_at > $1 AND end_at <= $2
		ORDER BY end_at
	`, asOf, asOf.Add(horizon))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE status = $1`, status,
	).Scan(&n)
	return n, err
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*ports.User, error) {
	var u ports.User
	err := row.Scan(
		&u.TelegramID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.PlanKey,
		&u.SelectedPlan,
		&u.StartAt,
		&u.EndAt,
		&u.Status,
		&u.Reminded3d,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func collectUsers(rows *sql.Rows) ([]*ports.User, error) {
	var users []*ports.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
