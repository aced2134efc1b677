package repository

import (
	"context"
	"database/sql"

	"github.com/trinesolutions/website-backend/internal/model"
)

// PartnerRepo persists partner logo entries.
type PartnerRepo struct{ DB *sql.DB }

func NewPartnerRepo(db *sql.DB) *PartnerRepo { return &PartnerRepo{DB: db} }

// List returns partners; when activeOnly is set, hidden entries are
// filtered out (the public site never sees inactive partners).
func (r *PartnerRepo) List(ctx context.Context, activeOnly bool) ([]model.Partner, error) {
	q := "SELECT id,name,logo_url,website,description,is_active FROM partners"
	if activeOnly {
		q += " WHERE is_active=1"
	}
	rows, err := r.DB.QueryContext(ctx, q+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Partner{}
	for rows.Next() {
		var p model.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.LogoURL, &p.Website, &p.Description, &p.IsActive); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PartnerRepo) Insert(ctx context.Context, p *model.Partner) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO partners (id,name,logo_url,website,description,is_active) VALUES (?,?,?,?,?,?)",
		p.ID, p.Name, p.LogoURL, p.Website, p.Description, p.IsActive)
	return err
}

func (r *PartnerRepo) Update(ctx context.Context, p *model.Partner) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE partners SET name=?,logo_url=?,website=?,description=?,is_active=? WHERE id=?",
		p.Name, p.LogoURL, p.Website, p.Description, p.IsActive, p.ID)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *PartnerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM partners WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *PartnerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM partners").Scan(&n)
	return n, err
}
