package repository

import (
	"context"
	"database/sql"

	"github.com/trinesolutions/website-backend/internal/model"
)

// ContactRepo persists contact-form submissions.
type ContactRepo struct{ DB *sql.DB }

func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{DB: db} }

func (r *ContactRepo) Insert(ctx context.Context, m *model.ContactMessage) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO contacts (id,name,email,company,message,created_at) VALUES (?,?,?,?,?,?)",
		m.ID, m.Name, m.Email, m.Company, m.Message, m.CreatedAt)
	return err
}

// List returns all messages, newest first.
func (r *ContactRepo) List(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,email,company,message,created_at FROM contacts ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ContactMessage{}
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Company, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *ContactRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM contacts").Scan(&n)
	return n, err
}
