package appointmentrepo

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

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name        string
		appointment *domain.Appointment
		serviceIDs  []int
		mockSetup   func()
		expectErr   bool
	}{
		{
			name: "Save appointment with services",
			appointment: &domain.Appointment{
				ClientID:        3,
				ProfessionalID:  2,
				AppointmentDate: timeNow,
			},
			serviceIDs: []int{1, 2},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, timeNow)
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
						WithArgs(3, 2, timeNow, (*time.Time)(nil)).
						WillReturnRows(rows)
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO appointment_services")).
						WithArgs(1, 1).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO appointment_services")).
						WithArgs(1, 2).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			appointment: &domain.Appointment{
				ClientID:        3,
				ProfessionalID:  2,
				AppointmentDate: timeNow,
			},
			serviceIDs: []int{1},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
						WithArgs(3, 2, timeNow, (*time.Time)(nil)).
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
			err := repo.Save(context.Background(), tt.appointment, tt.serviceIDs)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, tt.appointment.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Appointment
	}{
		{
			name: "Appointment exists",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "client_id", "professional_id", "appointment_date", "payment_deadline", "payment_id", "created_at"}).
					AddRow(1, 3, 2, timeNow, nil, nil, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("FROM appointments")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Appointment{
				ID:              1,
				ClientID:        3,
				ProfessionalID:  2,
				AppointmentDate: timeNow,
				CreatedAt:       timeNow,
			},
		},
		{
			name: "Appointment does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM appointments")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM appointments")).
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
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_ReplaceServices(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name       string
		serviceIDs []int
		mockSetup  func()
		expectErr  bool
	}{
		{
			name:       "Services replaced",
			serviceIDs: []int{2, 3},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointment_services")).
						WithArgs(1).
						WillReturnResult(pgxmock.NewResult("DELETE", 1))
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO appointment_services")).
						WithArgs(1, 2).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO appointment_services")).
						WithArgs(1, 3).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name:       "Database error",
			serviceIDs: []int{2},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointment_services")).
						WithArgs(1).
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
			err := repo.ReplaceServices(context.Background(), 1, tt.serviceIDs)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_DeleteExpiredUnpaid(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		deleted   int64
	}{
		{
			name: "Expired unpaid appointments removed",
			mockSetup: func() {
				mock.ExpectExec(`DELETE FROM appointments\s+WHERE payment_id IS NULL`).
					WithArgs(now).
					WillReturnResult(pgxmock.NewResult("DELETE", 2))
			},
			deleted: 2,
		},
		{
			name: "Nothing expired",
			mockSetup: func() {
				mock.ExpectExec(`DELETE FROM appointments\s+WHERE payment_id IS NULL`).
					WithArgs(now).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			deleted: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(`DELETE FROM appointments\s+WHERE payment_id IS NULL`).
					WithArgs(now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.DeleteExpiredUnpaid(context.Background(), now)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.deleted, deleted)
			}
		})
	}
}
