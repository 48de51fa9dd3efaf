package paymentrepo

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

// SaveWithLink persists the payment and points the appointment back at it in
// a single transaction: either both sides of the link commit or neither.
func (r *Repository) SaveWithLink(ctx context.Context, payment *domain.Payment) error {
	insertPayment := `
        INSERT INTO payments (total_payment, discount, payment_type_id, credit_card, pin, appointment_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, payment_date
    `
	linkAppointment := `
        UPDATE appointments
        SET payment_id = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, insertPayment,
			payment.TotalPayment, payment.Discount, payment.PaymentTypeID,
			payment.CreditCard, payment.PIN, payment.AppointmentID,
		)
		if err := row.Scan(&payment.ID, &payment.PaymentDate); err != nil {
			zap.L().Error("can't save payment", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, linkAppointment, payment.ID, payment.AppointmentID); err != nil {
			zap.L().Error("can't link payment to appointment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByAppointmentID(ctx context.Context, appointmentID int) (*domain.Payment, error) {
	query := `
        SELECT id, total_payment, discount, payment_type_id, payment_date, credit_card, pin, appointment_id
        FROM payments
        WHERE appointment_id = $1
    `
	row := r.db.QueryRow(ctx, query, appointmentID)

	var payment domain.Payment
	err := row.Scan(
		&payment.ID, &payment.TotalPayment, &payment.Discount,
		&payment.PaymentTypeID, &payment.PaymentDate,
		&payment.CreditCard, &payment.PIN, &payment.AppointmentID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

// FindBetween lists payments joined with the client and payment type names;
// nil bounds mean no filtering on that side.
func (r *Repository) FindBetween(ctx context.Context, from, to *time.Time) ([]domain.PaymentListItem, error) {
	query := `
        SELECT p.id, p.total_payment, p.discount, p.payment_type_id, p.payment_date, p.appointment_id,
               u.first_name, u.last_name, pt.name
        FROM payments p
        JOIN appointments a ON a.id = p.appointment_id
        JOIN users u ON u.id = a.client_id
        JOIN payment_types pt ON pt.id = p.payment_type_id
        WHERE ($1::timestamptz IS NULL OR p.payment_date >= $1)
          AND ($2::timestamptz IS NULL OR p.payment_date < $2)
        ORDER BY p.payment_date DESC
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.PaymentListItem
	for rows.Next() {
		var item domain.PaymentListItem
		err := rows.Scan(
			&item.ID, &item.TotalPayment, &item.Discount,
			&item.PaymentTypeID, &item.PaymentDate, &item.AppointmentID,
			&item.ClientFirstName, &item.ClientLastName, &item.PaymentTypeName,
		)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) FindPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	query := `
        SELECT id, name
        FROM payment_types
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get payment types", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var types []domain.PaymentType
	for rows.Next() {
		var paymentType domain.PaymentType
		if err := rows.Scan(&paymentType.ID, &paymentType.Name); err != nil {
			zap.L().Error("can't scan payment type row", zap.Error(err))
			return nil, err
		}
		types = append(types, paymentType)
	}
	return types, nil
}

func (r *Repository) FindPaymentTypeByID(ctx context.Context, id int) (*domain.PaymentType, error) {
	query := `
        SELECT id, name
        FROM payment_types
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var paymentType domain.PaymentType
	err := row.Scan(&paymentType.ID, &paymentType.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment type", zap.Error(err))
		return nil, err
	}
	return &paymentType, nil
}
