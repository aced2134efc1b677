package repository

import (
	"context"
	"database/sql"

	"github.com/trinesolutions/website-backend/internal/model"
)

// JobRepo persists career listings.
type JobRepo struct{ DB *sql.DB }

func NewJobRepo(db *sql.DB) *JobRepo { return &JobRepo{DB: db} }

const jobColumns = "id,title,department,location,type,salary,description,requirements,responsibilities,benefits,is_active,created_at"

func (r *JobRepo) scanRows(rows *sql.Rows) ([]model.Job, error) {
	out := []model.Job{}
	for rows.Next() {
		var j model.Job
		var req, resp, ben []byte
		if err := rows.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Type, &j.Salary,
			&j.Description, &req, &resp, &ben, &j.IsActive, &j.CreatedAt); err != nil {
			return nil, err
		}
		j.Requirements = unpackList(req)
		j.Responsibilities = unpackList(resp)
		j.Benefits = unpackList(ben)
		out = append(out, j)
	}
	return out, rows.Err()
}

// List returns listings, optionally restricted to active ones.
func (r *JobRepo) List(ctx context.Context, activeOnly bool) ([]model.Job, error) {
	q := "SELECT " + jobColumns + " FROM jobs"
	if activeOnly {
		q += " WHERE is_active=1"
	}
	rows, err := r.DB.QueryContext(ctx, q+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// GetByID fetches a single listing.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	var j model.Job
	var req, resp, ben []byte
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+jobColumns+" FROM jobs WHERE id=? LIMIT 1", id).
		Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Type, &j.Salary,
			&j.Description, &req, &resp, &ben, &j.IsActive, &j.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	j.Requirements = unpackList(req)
	j.Responsibilities = unpackList(resp)
	j.Benefits = unpackList(ben)
	return &j, nil
}

func (r *JobRepo) Insert(ctx context.Context, j *model.Job) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO jobs ("+jobColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?,?)",
		j.ID, j.Title, j.Department, j.Location, j.Type, j.Salary, j.Description,
		packList(j.Requirements), packList(j.Responsibilities), packList(j.Benefits),
		j.IsActive, j.CreatedAt)
	return err
}

func (r *JobRepo) Update(ctx context.Context, j *model.Job) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE jobs SET title=?,department=?,location=?,type=?,salary=?,description=?,requirements=?,responsibilities=?,benefits=?,is_active=? WHERE id=?",
		j.Title, j.Department, j.Location, j.Type, j.Salary, j.Description,
		packList(j.Requirements), packList(j.Responsibilities), packList(j.Benefits),
		j.IsActive, j.ID)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *JobRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM jobs WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *JobRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs").Scan(&n)
	return n, err
}
