package announcementrepo

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

func (r *Repository) Save(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error) {
	query := `
        INSERT INTO announcements (title, content, date_description, user_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		announcement.Title, announcement.Content, announcement.DateDescription, announcement.UserID,
	)
	if err := row.Scan(&announcement.ID, &announcement.CreatedAt); err != nil {
		zap.L().Error("can't save announcement", zap.Error(err))
		return nil, err
	}
	return announcement, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Announcement, error) {
	query := `
        SELECT id, title, content, date_description, user_id, created_at
        FROM announcements
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var announcement domain.Announcement
	err := row.Scan(
		&announcement.ID, &announcement.Title, &announcement.Content,
		&announcement.DateDescription, &announcement.UserID, &announcement.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find announcement", zap.Error(err))
		return nil, err
	}
	return &announcement, nil
}

// FindAll returns announcements newest first.
func (r *Repository) FindAll(ctx context.Context) ([]domain.Announcement, error) {
	query := `
        SELECT id, title, content, date_description, user_id, created_at
        FROM announcements
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get announcements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var announcements []domain.Announcement
	for rows.Next() {
		var announcement domain.Announcement
		err := rows.Scan(
			&announcement.ID, &announcement.Title, &announcement.Content,
			&announcement.DateDescription, &announcement.UserID, &announcement.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan announcement row", zap.Error(err))
			return nil, err
		}
		announcements = append(announcements, announcement)
	}
	return announcements, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM announcements
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't delete announcement", zap.Error(err))
		return err
	}
	return nil
}
