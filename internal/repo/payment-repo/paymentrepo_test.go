package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_SaveWithLink(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()

	payment := func() *domain.Payment {
		return &domain.Payment{
			TotalPayment:  135.00,
			Discount:      0.10,
			PaymentTypeID: 2,
			CreditCard:    "1234567890123456",
			PIN:           "1234",
			AppointmentID: 1,
		}
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Payment saved and appointment linked",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					rows := pgxmock.NewRows([]string{"id", "payment_date"}).AddRow(10, timeNow)
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
						WithArgs(135.00, 0.10, 2, "1234567890123456", "1234", 1).
						WillReturnRows(rows)
					mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments")).
						WithArgs(10, 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Insert fails and nothing is linked",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
						WithArgs(135.00, 0.10, 2, "1234567890123456", "1234", 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name: "Link fails and the transaction aborts",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					rows := pgxmock.NewRows([]string{"id", "payment_date"}).AddRow(10, timeNow)
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
						WithArgs(135.00, 0.10, 2, "1234567890123456", "1234", 1).
						WillReturnRows(rows)
					mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments")).
						WithArgs(10, 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			p := payment()
			err := repo.SaveWithLink(context.Background(), p)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, p.ID)
				assert.Equal(t, timeNow, p.PaymentDate)
			}
		})
	}
}

func TestRepository_FindByAppointmentID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Payment
	}{
		{
			name: "Payment exists",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "total_payment", "discount", "payment_type_id", "payment_date", "credit_card", "pin", "appointment_id"}).
					AddRow(10, 135.00, 0.10, 2, timeNow, "1234567890123456", "1234", 1)
				mock.ExpectQuery(regexp.QuoteMeta("FROM payments")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Payment{
				ID:            10,
				TotalPayment:  135.00,
				Discount:      0.10,
				PaymentTypeID: 2,
				PaymentDate:   timeNow,
				CreditCard:    "1234567890123456",
				PIN:           "1234",
				AppointmentID: 1,
			},
		},
		{
			name: "No payment yet",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM payments")).
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM payments")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByAppointmentID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindBetween(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()
	from := timeNow.AddDate(0, 0, -7)
	to := timeNow

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.PaymentListItem
	}{
		{
			name: "Payments in range",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "total_payment", "discount", "payment_type_id", "payment_date", "appointment_id", "first_name", "last_name", "name"}).
					AddRow(10, 135.00, 0.10, 2, timeNow, 1, "Ana", "Paz", "Tarjeta de credito")
				mock.ExpectQuery(regexp.QuoteMeta("FROM payments p")).
					WithArgs(&from, &to).
					WillReturnRows(rows)
			},
			result: []domain.PaymentListItem{
				{
					Payment: domain.Payment{
						ID:            10,
						TotalPayment:  135.00,
						Discount:      0.10,
						PaymentTypeID: 2,
						PaymentDate:   timeNow,
						AppointmentID: 1,
					},
					ClientFirstName: "Ana",
					ClientLastName:  "Paz",
					PaymentTypeName: "Tarjeta de credito",
				},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM payments p")).
					WithArgs(&from, &to).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindBetween(context.Background(), &from, &to)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindPaymentTypes(t *testing.T) {
	repo, mock, _ := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "name"}).
		AddRow(1, "Efectivo").
		AddRow(2, "Tarjeta de credito")
	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_types")).
		WillReturnRows(rows)

	types, err := repo.FindPaymentTypes(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.PaymentType{
		{ID: 1, Name: "Efectivo"},
		{ID: 2, Name: "Tarjeta de credito"},
	}, types)
}
