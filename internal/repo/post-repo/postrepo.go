package postrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	query := `
        INSERT INTO posts (title, content, author_id, alias)
        VALUES ($1, $2, $3, $4)
        RETURNING id, posted_at
    `
	row := r.db.QueryRow(ctx, query, post.Title, post.Content, post.AuthorID, post.Alias)
	if err := row.Scan(&post.ID, &post.PostedAt); err != nil {
		zap.L().Error("can't save post", zap.Error(err))
		return nil, err
	}
	return post, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Post, error) {
	query := `
        SELECT id, title, content, posted_at, author_id, alias
        FROM posts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var post domain.Post
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.PostedAt, &post.AuthorID, &post.Alias)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find post", zap.Error(err))
		return nil, err
	}
	return &post, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Post, error) {
	query := `
        SELECT id, title, content, posted_at, author_id, alias
        FROM posts
        ORDER BY posted_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get posts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.PostedAt, &post.AuthorID, &post.Alias); err != nil {
			zap.L().Error("can't scan post row", zap.Error(err))
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *Repository) Update(ctx context.Context, post *domain.Post) error {
	query := `
        UPDATE posts
        SET title = $1, content = $2
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, post.Title, post.Content, post.ID); err != nil {
		zap.L().Error("can't update post", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM posts
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't delete post", zap.Error(err))
		return err
	}
	return nil
}
