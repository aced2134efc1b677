package repository

import (
	"context"
	"database/sql"

	"github.com/trinesolutions/website-backend/internal/model"
)

// CaseStudyRepo persists case studies.
type CaseStudyRepo struct{ DB *sql.DB }

func NewCaseStudyRepo(db *sql.DB) *CaseStudyRepo { return &CaseStudyRepo{DB: db} }

func (r *CaseStudyRepo) List(ctx context.Context) ([]model.CaseStudy, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,title,industry,challenge,solution,results,image,technologies FROM case_studies ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.CaseStudy{}
	for rows.Next() {
		var cs model.CaseStudy
		var tech []byte
		if err := rows.Scan(&cs.ID, &cs.Title, &cs.Industry, &cs.Challenge,
			&cs.Solution, &cs.Results, &cs.Image, &tech); err != nil {
			return nil, err
		}
		cs.Technologies = unpackList(tech)
		out = append(out, cs)
	}
	return out, rows.Err()
}

func (r *CaseStudyRepo) Insert(ctx context.Context, cs *model.CaseStudy) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO case_studies (id,title,industry,challenge,solution,results,image,technologies) VALUES (?,?,?,?,?,?,?,?)",
		cs.ID, cs.Title, cs.Industry, cs.Challenge, cs.Solution, cs.Results, cs.Image, packList(cs.Technologies))
	return err
}

func (r *CaseStudyRepo) Update(ctx context.Context, cs *model.CaseStudy) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE case_studies SET title=?,industry=?,challenge=?,solution=?,results=?,image=?,technologies=? WHERE id=?",
		cs.Title, cs.Industry, cs.Challenge, cs.Solution, cs.Results, cs.Image, packList(cs.Technologies), cs.ID)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *CaseStudyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM case_studies WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *CaseStudyRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM case_studies").Scan(&n)
	return n, err
}
