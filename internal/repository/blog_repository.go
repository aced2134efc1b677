package repository

import (
	"context"
	"database/sql"

	"github.com/trinesolutions/website-backend/internal/model"
)

// BlogRepo persists blog posts.
type BlogRepo struct{ DB *sql.DB }

func NewBlogRepo(db *sql.DB) *BlogRepo { return &BlogRepo{DB: db} }

const blogColumns = "id,slug,title,excerpt,content,image,date,author,category"

func scanPost(row *sql.Row) (*model.BlogPost, error) {
	var p model.BlogPost
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content,
		&p.Image, &p.Date, &p.Author, &p.Category)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts, newest first by publication date.
func (r *BlogRepo) List(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+blogColumns+" FROM blog_posts ORDER BY date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.BlogPost{}
	for rows.Next() {
		var p model.BlogPost
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content,
			&p.Image, &p.Date, &p.Author, &p.Category); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetBySlugOrID resolves a post by its public slug, falling back to id so
// older links and the admin UI keep working.
func (r *BlogRepo) GetBySlugOrID(ctx context.Context, key string) (*model.BlogPost, error) {
	p, err := scanPost(r.DB.QueryRowContext(ctx,
		"SELECT "+blogColumns+" FROM blog_posts WHERE slug=? LIMIT 1", key))
	if err == ErrNotFound {
		return scanPost(r.DB.QueryRowContext(ctx,
			"SELECT "+blogColumns+" FROM blog_posts WHERE id=? LIMIT 1", key))
	}
	return p, err
}

func (r *BlogRepo) Insert(ctx context.Context, p *model.BlogPost) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO blog_posts ("+blogColumns+") VALUES (?,?,?,?,?,?,?,?,?)",
		p.ID, p.Slug, p.Title, p.Excerpt, p.Content, p.Image, p.Date, p.Author, p.Category)
	return err
}

func (r *BlogRepo) Update(ctx context.Context, p *model.BlogPost) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE blog_posts SET slug=?,title=?,excerpt=?,content=?,image=?,date=?,author=?,category=? WHERE id=?",
		p.Slug, p.Title, p.Excerpt, p.Content, p.Image, p.Date, p.Author, p.Category, p.ID)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM blog_posts WHERE id=?", id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *BlogRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM blog_posts").Scan(&n)
	return n, err
}
