package repository

import (
	"context"
	"database/sql"

	"github.com/trinesolutions/website-backend/internal/model"
)

// TestimonialRepo persists client testimonials.
type TestimonialRepo struct{ DB *sql.DB }

func NewTestimonialRepo(db *sql.DB) *TestimonialRepo { return &TestimonialRepo{DB: db} }

func (r *TestimonialRepo) List(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,role,company,content,rating,avatar FROM testimonials ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Testimonial{}
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Company, &t.Content, &t.Rating, &t.Avatar); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TestimonialRepo) Insert(ctx context.Context, t *model.Testimonial) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO testimonials (id,name,role,company,content,rating,avatar) VALUES (?,?,?,?,?,?,?)",
		t.ID, t.Name, t.Role, t.Company, t.Content, t.Rating, t.Avatar)
	return err
}

func (r *TestimonialRepo) Update(ctx context.Context, t *model.Testimonial) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE testimonials SET name=?,role=?,company=?,content=?,rating=?,avatar=? WHERE id=?",
		t.Name, t.Role, t.Company, t.Content, t.Rating, t.Avatar, t.ID)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *TestimonialRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM testimonials WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *TestimonialRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM testimonials").Scan(&n)
	return n, err
}
