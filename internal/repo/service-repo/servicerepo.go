package servicerepo

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

func (r *Repository) FindAll(ctx context.Context) ([]domain.Service, error) {
	query := `
        SELECT id, name, price
        FROM services
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(&service.ID, &service.Name, &service.Price); err != nil {
			zap.L().Error("can't scan service row", zap.Error(err))
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Service, error) {
	query := `
        SELECT id, name, price
        FROM services
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var service domain.Service
	err := row.Scan(&service.ID, &service.Name, &service.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find service", zap.Error(err))
		return nil, err
	}
	return &service, nil
}

func (r *Repository) FindByIDs(ctx context.Context, ids []int) ([]domain.Service, error) {
	query := `
        SELECT id, name, price
        FROM services
        WHERE id = ANY($1)
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't get services by ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(&service.ID, &service.Name, &service.Price); err != nil {
			zap.L().Error("can't scan service row", zap.Error(err))
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}

// FindByAppointmentID returns the services attached to an appointment.
func (r *Repository) FindByAppointmentID(ctx context.Context, appointmentID int) ([]domain.Service, error) {
	query := `
        SELECT s.id, s.name, s.price
        FROM services s
        JOIN appointment_services aps ON aps.service_id = s.id
        WHERE aps.appointment_id = $1
        ORDER BY s.id
    `
	rows, err := r.db.Query(ctx, query, appointmentID)
	if err != nil {
		zap.L().Error("can't get appointment services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(&service.ID, &service.Name, &service.Price); err != nil {
			zap.L().Error("can't scan service row", zap.Error(err))
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}

func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	query := `
        INSERT INTO services (name, price)
        VALUES ($1, $2)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query, service.Name, service.Price)
	if err := row.Scan(&service.ID); err != nil {
		zap.L().Error("can't create service", zap.Error(err))
		return nil, err
	}
	return service, nil
}

func (r *Repository) Update(ctx context.Context, service *domain.Service) error {
	query := `
        UPDATE services
        SET name = $1, price = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, service.Name, service.Price, service.ID)
	if err != nil {
		zap.L().Error("can't update service", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM services
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete service", zap.Error(err))
		return err
	}
	return nil
}

// IsReferencedByPayment reports whether any paid appointment includes the
// service; its price is frozen once true.
func (r *Repository) IsReferencedByPayment(ctx context.Context, id int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM appointment_services aps
            JOIN payments p ON p.appointment_id = aps.appointment_id
            WHERE aps.service_id = $1
        )
    `
	var referenced bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&referenced); err != nil {
		zap.L().Error("can't check service payment references", zap.Error(err))
		return false, err
	}
	return referenced, nil
}
