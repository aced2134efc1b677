package repository

import (
	"context"
	"database/sql"

	"github.com/trinesolutions/website-backend/internal/model"
)

// ServiceRepo persists service offerings.
type ServiceRepo struct{ DB *sql.DB }

func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{DB: db} }

// List returns all services.
func (r *ServiceRepo) List(ctx context.Context) ([]model.Service, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,title,description,icon,capabilities,tools FROM services ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Service{}
	for rows.Next() {
		var s model.Service
		var caps, tools []byte
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &caps, &tools); err != nil {
			return nil, err
		}
		s.Capabilities = unpackList(caps)
		s.Tools = unpackList(tools)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Insert stores a new service.
func (r *ServiceRepo) Insert(ctx context.Context, s *model.Service) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO services (id,title,description,icon,capabilities,tools) VALUES (?,?,?,?,?,?)",
		s.ID, s.Title, s.Description, s.Icon, packList(s.Capabilities), packList(s.Tools))
	return err
}

// Update rewrites all mutable fields of a service.
func (r *ServiceRepo) Update(ctx context.Context, s *model.Service) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE services SET title=?,description=?,icon=?,capabilities=?,tools=? WHERE id=?",
		s.Title, s.Description, s.Icon, packList(s.Capabilities), packList(s.Tools), s.ID)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// Delete removes a service by id.
func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM services WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// Count returns the number of stored services.
func (r *ServiceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM services").Scan(&n)
	return n, err
}

// mustAffect converts a zero-row result into ErrNotFound.
func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
