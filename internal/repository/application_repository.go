package repository

import (
	"context"
	"database/sql"

	"github.com/trinesolutions/website-backend/internal/model"
)

// ApplicationRepo persists job applications.
type ApplicationRepo struct{ DB *sql.DB }

func NewApplicationRepo(db *sql.DB) *ApplicationRepo { return &ApplicationRepo{DB: db} }

const applicationColumns = "id,job_id,job_title,name,email,phone,resume_url,cover_letter,status,created_at"

func (r *ApplicationRepo) Insert(ctx context.Context, a *model.JobApplication) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO job_applications ("+applicationColumns+") VALUES (?,?,?,?,?,?,?,?,?,?)",
		a.ID, a.JobID, a.JobTitle, a.Name, a.Email, a.Phone, a.ResumeURL,
		a.CoverLetter, a.Status, a.CreatedAt)
	return err
}

// List returns all applications, newest first.
func (r *ApplicationRepo) List(ctx context.Context) ([]model.JobApplication, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+applicationColumns+" FROM job_applications ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.JobApplication{}
	for rows.Next() {
		var a model.JobApplication
		if err := rows.Scan(&a.ID, &a.JobID, &a.JobTitle, &a.Name, &a.Email, &a.Phone,
			&a.ResumeURL, &a.CoverLetter, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateStatus moves an application through the triage pipeline.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE job_applications SET status=? WHERE id=?", status, id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *ApplicationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM job_applications").Scan(&n)
	return n, err
}
