package repository

import (
	"context"
	"database/sql"

	"github.com/trinesolutions/website-backend/internal/model"
)

// TeamRepo persists team member bios.
type TeamRepo struct{ DB *sql.DB }

func NewTeamRepo(db *sql.DB) *TeamRepo { return &TeamRepo{DB: db} }

func (r *TeamRepo) List(ctx context.Context) ([]model.TeamMember, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,position,bio,image FROM team_members ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.TeamMember{}
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.Bio, &m.Image); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *TeamRepo) Insert(ctx context.Context, m *model.TeamMember) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO team_members (id,name,position,bio,image) VALUES (?,?,?,?,?)",
		m.ID, m.Name, m.Position, m.Bio, m.Image)
	return err
}

func (r *TeamRepo) Update(ctx context.Context, m *model.TeamMember) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE team_members SET name=?,position=?,bio=?,image=? WHERE id=?",
		m.Name, m.Position, m.Bio, m.Image, m.ID)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *TeamRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM team_members WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *TeamRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM team_members").Scan(&n)
	return n, err
}
