package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/trinesolutions/website-backend/internal/model"
)

// SubscriberRepo persists newsletter signups.
type SubscriberRepo struct{ DB *sql.DB }

func NewSubscriberRepo(db *sql.DB) *SubscriberRepo { return &SubscriberRepo{DB: db} }

// Insert stores a signup.  The UNIQUE index on email makes re-subscribing
// surface as ErrEmailExists, which the handler treats as success.
func (r *SubscriberRepo) Insert(ctx context.Context, s *model.Subscriber) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO subscribers (id,email,created_at) VALUES (?,?,?)",
		s.ID, strings.ToLower(strings.TrimSpace(s.Email)), s.CreatedAt)
	if isDuplicate(err) {
		return ErrEmailExists
	}
	return err
}

// List returns all subscribers, newest first.
func (r *SubscriberRepo) List(ctx context.Context) ([]model.Subscriber, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,email,created_at FROM subscribers ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Subscriber{}
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubscriberRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM subscribers WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *SubscriberRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM subscribers").Scan(&n)
	return n, err
}
