package userrepo

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

const userColumns = `id, username, email, password_hash, first_name, last_name, is_owner, is_professional, is_secretary, cuit, created_at`

func scanUser(row pg.RowScanner, user *domain.User) error {
	return row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName,
		&user.IsOwner, &user.IsProfessional, &user.IsSecretary,
		&user.CUIT, &user.CreatedAt,
	)
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE username = $1
    `
	row := r.db.QueryRow(ctx, query, username)

	var user domain.User
	err := scanUser(row, &user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by username", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := scanUser(row, &user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := scanUser(row, &user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (username, email, password_hash, first_name, last_name, is_owner, is_professional, is_secretary, cuit)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.LastName,
		user.IsOwner, user.IsProfessional, user.IsSecretary, user.CUIT,
	)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Update(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET email = $1, password_hash = $2, first_name = $3, last_name = $4, cuit = $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.CUIT, user.ID,
	)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateRoles(ctx context.Context, id int, isOwner, isProfessional, isSecretary bool) error {
	query := `
        UPDATE users
        SET is_owner = $1, is_professional = $2, is_secretary = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, isOwner, isProfessional, isSecretary, id)
	if err != nil {
		zap.L().Error("can't update user roles", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindProfessionals(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE is_professional = TRUE
        ORDER BY last_name, first_name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get professionals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
