package appointmentrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const appointmentColumns = `id, client_id, professional_id, appointment_date, payment_deadline, payment_id, created_at`

func scanAppointment(row pg.RowScanner, a *domain.Appointment) error {
	return row.Scan(
		&a.ID, &a.ClientID, &a.ProfessionalID,
		&a.AppointmentDate, &a.PaymentDeadline, &a.PaymentID, &a.CreatedAt,
	)
}

// Save inserts the appointment and its service set as one transaction. The
// payment deadline is computed by the caller before the insert, so a single
// write is enough.
func (r *Repository) Save(ctx context.Context, appointment *domain.Appointment, serviceIDs []int) error {
	insertAppointment := `
        INSERT INTO appointments (client_id, professional_id, appointment_date, payment_deadline)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	insertService := `
        INSERT INTO appointment_services (appointment_id, service_id)
        VALUES ($1, $2)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, insertAppointment,
			appointment.ClientID, appointment.ProfessionalID,
			appointment.AppointmentDate, appointment.PaymentDeadline,
		)
		if err := row.Scan(&appointment.ID, &appointment.CreatedAt); err != nil {
			zap.L().Error("can't save appointment", zap.Error(err))
			return err
		}
		for _, serviceID := range serviceIDs {
			if _, err := r.db.Exec(ctx, insertService, appointment.ID, serviceID); err != nil {
				zap.L().Error("can't attach service to appointment", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Appointment, error) {
	query := `
        SELECT ` + appointmentColumns + `
        FROM appointments
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var appointment domain.Appointment
	err := scanAppointment(row, &appointment)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find appointment", zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Appointment, error) {
	query := `
        SELECT ` + appointmentColumns + `
        FROM appointments
        ORDER BY appointment_date
    `
	return r.queryAppointments(ctx, query)
}

// FindByClientID returns the appointments where the user is the client.
func (r *Repository) FindByClientID(ctx context.Context, clientID int) ([]domain.Appointment, error) {
	query := `
        SELECT ` + appointmentColumns + `
        FROM appointments
        WHERE client_id = $1
        ORDER BY appointment_date
    `
	return r.queryAppointments(ctx, query, clientID)
}

// FindByParticipant returns the appointments where the user is either the
// client or the professional.
func (r *Repository) FindByParticipant(ctx context.Context, userID int) ([]domain.Appointment, error) {
	query := `
        SELECT ` + appointmentColumns + `
        FROM appointments
        WHERE client_id = $1 OR professional_id = $1
        ORDER BY appointment_date
    `
	return r.queryAppointments(ctx, query, userID)
}

// FindFiltered narrows appointments by professional and/or date range; nil
// arguments are skipped. Used by the owner dashboards.
func (r *Repository) FindFiltered(ctx context.Context, professionalID *int, from, to *time.Time) ([]domain.Appointment, error) {
	query := `
        SELECT ` + appointmentColumns + `
        FROM appointments
        WHERE ($1::int IS NULL OR professional_id = $1)
          AND ($2::timestamptz IS NULL OR appointment_date >= $2)
          AND ($3::timestamptz IS NULL OR appointment_date < $3)
        ORDER BY appointment_date
    `
	return r.queryAppointments(ctx, query, professionalID, from, to)
}

func (r *Repository) Update(ctx context.Context, appointment *domain.Appointment) error {
	query := `
        UPDATE appointments
        SET professional_id = $1, appointment_date = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, appointment.ProfessionalID, appointment.AppointmentDate, appointment.ID)
	if err != nil {
		zap.L().Error("can't update appointment", zap.Error(err))
		return err
	}
	return nil
}

// ReplaceServices swaps the appointment's service set atomically.
func (r *Repository) ReplaceServices(ctx context.Context, appointmentID int, serviceIDs []int) error {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `DELETE FROM appointment_services WHERE appointment_id = $1`, appointmentID); err != nil {
			zap.L().Error("can't clear appointment services", zap.Error(err))
			return err
		}
		for _, serviceID := range serviceIDs {
			if _, err := r.db.Exec(ctx, `INSERT INTO appointment_services (appointment_id, service_id) VALUES ($1, $2)`, appointmentID, serviceID); err != nil {
				zap.L().Error("can't attach service to appointment", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM appointments
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete appointment", zap.Error(err))
		return err
	}
	return nil
}

// DeleteExpiredUnpaid removes every appointment whose payment deadline has
// passed and that still has no payment. The payment check lives inside the
// DELETE itself, so an appointment paid in the same instant is never
// removed.
func (r *Repository) DeleteExpiredUnpaid(ctx context.Context, now time.Time) (int64, error) {
	query := `
        DELETE FROM appointments
        WHERE payment_id IS NULL
          AND payment_deadline IS NOT NULL
          AND payment_deadline < $1
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("can't delete expired unpaid appointments", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) queryAppointments(ctx context.Context, query string, args ...any) ([]domain.Appointment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get appointments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var appointment domain.Appointment
		if err := scanAppointment(rows, &appointment); err != nil {
			zap.L().Error("can't scan appointment row", zap.Error(err))
			return nil, err
		}
		appointments = append(appointments, appointment)
	}
	return appointments, nil
}
