package queryrepo

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

func (r *Repository) Save(ctx context.Context, query *domain.Query) (*domain.Query, error) {
	stmt := `
        INSERT INTO queries (user_id, title, content)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, stmt, query.UserID, query.Title, query.Content)
	if err := row.Scan(&query.ID, &query.CreatedAt); err != nil {
		zap.L().Error("can't save query", zap.Error(err))
		return nil, err
	}
	return query, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Query, error) {
	stmt := `
        SELECT id, user_id, title, content, created_at
        FROM queries
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, stmt, id)

	var query domain.Query
	err := row.Scan(&query.ID, &query.UserID, &query.Title, &query.Content, &query.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find query", zap.Error(err))
		return nil, err
	}
	return &query, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Query, error) {
	stmt := `
        SELECT id, user_id, title, content, created_at
        FROM queries
        ORDER BY created_at
    `
	return r.queryQueries(ctx, stmt)
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Query, error) {
	stmt := `
        SELECT id, user_id, title, content, created_at
        FROM queries
        WHERE user_id = $1
        ORDER BY created_at
    `
	return r.queryQueries(ctx, stmt, userID)
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	stmt := `
        DELETE FROM queries
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, stmt, id); err != nil {
		zap.L().Error("can't delete query", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveReply(ctx context.Context, reply *domain.QueryResponse) (*domain.QueryResponse, error) {
	stmt := `
        INSERT INTO query_responses (query_id, user_id, content)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, stmt, reply.QueryID, reply.UserID, reply.Content)
	if err := row.Scan(&reply.ID, &reply.CreatedAt); err != nil {
		zap.L().Error("can't save query reply", zap.Error(err))
		return nil, err
	}
	return reply, nil
}

// FindRepliesByQueryID returns the replies ordered by creation time.
func (r *Repository) FindRepliesByQueryID(ctx context.Context, queryID int) ([]domain.QueryResponse, error) {
	stmt := `
        SELECT id, query_id, user_id, content, created_at
        FROM query_responses
        WHERE query_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, stmt, queryID)
	if err != nil {
		zap.L().Error("can't get query replies", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var replies []domain.QueryResponse
	for rows.Next() {
		var reply domain.QueryResponse
		if err := rows.Scan(&reply.ID, &reply.QueryID, &reply.UserID, &reply.Content, &reply.CreatedAt); err != nil {
			zap.L().Error("can't scan query reply row", zap.Error(err))
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, nil
}

func (r *Repository) queryQueries(ctx context.Context, stmt string, args ...any) ([]domain.Query, error) {
	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		zap.L().Error("can't get queries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var queries []domain.Query
	for rows.Next() {
		var query domain.Query
		if err := rows.Scan(&query.ID, &query.UserID, &query.Title, &query.Content, &query.CreatedAt); err != nil {
			zap.L().Error("can't scan query row", zap.Error(err))
			return nil, err
		}
		queries = append(queries, query)
	}
	return queries, nil
}
