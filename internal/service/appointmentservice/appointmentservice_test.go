package appointmentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockServiceRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	appointmentRepo := NewMockRepo(ctrl)
	serviceRepo := NewMockServiceRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(appointmentRepo, serviceRepo, userRepo)
	defer ctrl.Finish()
	return service, appointmentRepo, serviceRepo, userRepo
}

func TestCreate(t *testing.T) {
	service, appointmentRepo, serviceRepo, userRepo := NewMock(t)

	client := auth.Principal{UserID: 3}
	staff := auth.Principal{UserID: 2, IsSecretary: true}

	tests := []struct {
		name             string
		principal        auth.Principal
		professionalID   int
		serviceIDs       []int
		appointmentDate  time.Time
		prepareMock      func()
		expectDeadline   bool
		expectedError    error
	}{
		{
			name:            "Appointment within 48 hours gets a deadline",
			principal:       client,
			professionalID:  2,
			serviceIDs:      []int{1},
			appointmentDate: time.Now().Add(1 * time.Hour),
			prepareMock: func() {
				serviceRepo.EXPECT().FindByIDs(gomock.Any(), []int{1}).Return([]domain.Service{{ID: 1}}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, IsProfessional: true}, nil)
				appointmentRepo.EXPECT().Save(gomock.Any(), gomock.Any(), []int{1}).Return(nil)
			},
			expectDeadline: true,
		},
		{
			name:            "Appointment beyond 48 hours has no deadline",
			principal:       client,
			professionalID:  2,
			serviceIDs:      []int{1},
			appointmentDate: time.Now().Add(72 * time.Hour),
			prepareMock: func() {
				serviceRepo.EXPECT().FindByIDs(gomock.Any(), []int{1}).Return([]domain.Service{{ID: 1}}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, IsProfessional: true}, nil)
				appointmentRepo.EXPECT().Save(gomock.Any(), gomock.Any(), []int{1}).Return(nil)
			},
			expectDeadline: false,
		},
		{
			name:            "Staff cannot book",
			principal:       staff,
			professionalID:  2,
			serviceIDs:      []int{1},
			appointmentDate: time.Now().Add(1 * time.Hour),
			expectedError:   ErrPermissionDenied,
		},
		{
			name:            "No services",
			principal:       client,
			professionalID:  2,
			serviceIDs:      nil,
			appointmentDate: time.Now().Add(1 * time.Hour),
			expectedError:   ErrNoServices,
		},
		{
			name:            "Unknown service",
			principal:       client,
			professionalID:  2,
			serviceIDs:      []int{1, 99},
			appointmentDate: time.Now().Add(1 * time.Hour),
			prepareMock: func() {
				serviceRepo.EXPECT().FindByIDs(gomock.Any(), []int{1, 99}).Return([]domain.Service{{ID: 1}}, nil)
			},
			expectedError: ErrServiceNotFound,
		},
		{
			name:            "Target user is not a professional",
			principal:       client,
			professionalID:  4,
			serviceIDs:      []int{1},
			appointmentDate: time.Now().Add(1 * time.Hour),
			prepareMock: func() {
				serviceRepo.EXPECT().FindByIDs(gomock.Any(), []int{1}).Return([]domain.Service{{ID: 1}}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 4).Return(&domain.User{ID: 4}, nil)
			},
			expectedError: ErrNotProfessional,
		},
		{
			name:            "Professional does not exist",
			principal:       client,
			professionalID:  9,
			serviceIDs:      []int{1},
			appointmentDate: time.Now().Add(1 * time.Hour),
			prepareMock: func() {
				serviceRepo.EXPECT().FindByIDs(gomock.Any(), []int{1}).Return([]domain.Service{{ID: 1}}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)
			},
			expectedError: ErrProfessionalNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			before := time.Now()
			appointment, err := service.Create(context.Background(), tt.principal, tt.professionalID, tt.serviceIDs, tt.appointmentDate)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, appointment)
			assert.Equal(t, tt.principal.UserID, appointment.ClientID)
			if tt.expectDeadline {
				assert.NotNil(t, appointment.PaymentDeadline)
				assert.WithinDuration(t, before.Add(30*time.Minute), *appointment.PaymentDeadline, 2*time.Second)
			} else {
				assert.Nil(t, appointment.PaymentDeadline)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, appointmentRepo, _, _ := NewMock(t)

	tests := []struct {
		name        string
		principal   auth.Principal
		prepareMock func()
	}{
		{
			name:      "Staff see all appointments",
			principal: auth.Principal{UserID: 1, IsOwner: true},
			prepareMock: func() {
				appointmentRepo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
			},
		},
		{
			name:      "Professionals see appointments they take part in",
			principal: auth.Principal{UserID: 2, IsProfessional: true},
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByParticipant(gomock.Any(), 2).Return(nil, nil)
			},
		},
		{
			name:      "Clients see their own appointments",
			principal: auth.Principal{UserID: 3},
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByClientID(gomock.Any(), 3).Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, err := service.List(context.Background(), tt.principal)
			assert.NoError(t, err)
		})
	}
}

func TestReplaceServices(t *testing.T) {
	service, appointmentRepo, serviceRepo, _ := NewMock(t)

	client := auth.Principal{UserID: 3}
	paymentID := 7

	tests := []struct {
		name          string
		principal     auth.Principal
		serviceIDs    []int
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Client swaps services on own unpaid appointment",
			principal:  client,
			serviceIDs: []int{2},
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1, ClientID: 3}, nil)
				serviceRepo.EXPECT().FindByIDs(gomock.Any(), []int{2}).Return([]domain.Service{{ID: 2}}, nil)
				appointmentRepo.EXPECT().ReplaceServices(gomock.Any(), 1, []int{2}).Return(nil)
			},
		},
		{
			name:       "Other client is rejected",
			principal:  auth.Principal{UserID: 8},
			serviceIDs: []int{2},
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1, ClientID: 3}, nil)
			},
			expectedError: ErrPermissionDenied,
		},
		{
			name:       "Paid appointment is frozen",
			principal:  client,
			serviceIDs: []int{2},
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1, ClientID: 3, PaymentID: &paymentID}, nil)
			},
			expectedError: ErrAppointmentHasPayment,
		},
		{
			name:       "Empty service set",
			principal:  client,
			serviceIDs: nil,
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1, ClientID: 3}, nil)
			},
			expectedError: ErrNoServices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ReplaceServices(context.Background(), tt.principal, 1, tt.serviceIDs)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSweepExpiredUnpaid(t *testing.T) {
	service, appointmentRepo, _, _ := NewMock(t)

	now := time.Now()

	t.Run("Deletes expired unpaid appointments", func(t *testing.T) {
		appointmentRepo.EXPECT().DeleteExpiredUnpaid(gomock.Any(), now).Return(int64(2), nil)

		deleted, err := service.SweepExpiredUnpaid(context.Background(), now)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})

	t.Run("Propagates repository errors", func(t *testing.T) {
		appointmentRepo.EXPECT().DeleteExpiredUnpaid(gomock.Any(), now).Return(int64(0), errors.New("db error"))

		deleted, err := service.SweepExpiredUnpaid(context.Background(), now)
		assert.Error(t, err)
		assert.Zero(t, deleted)
	})
}

func TestGroupedByDate(t *testing.T) {
	service, appointmentRepo, serviceRepo, userRepo := NewMock(t)

	owner := auth.Principal{UserID: 1, IsOwner: true}
	day := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	t.Run("Owner only", func(t *testing.T) {
		_, err := service.GroupedByDate(context.Background(), auth.Principal{UserID: 3})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("Groups by calendar day", func(t *testing.T) {
		appointmentRepo.EXPECT().FindAll(gomock.Any()).Return([]domain.Appointment{
			{ID: 1, ClientID: 3, ProfessionalID: 2, AppointmentDate: day},
			{ID: 2, ClientID: 4, ProfessionalID: 2, AppointmentDate: day.Add(2 * time.Hour)},
		}, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.User{ID: 3, Username: "ana"}, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), 4).Return(&domain.User{ID: 4, Username: "juan"}, nil)
		serviceRepo.EXPECT().FindByAppointmentID(gomock.Any(), 1).Return([]domain.Service{{Name: "Masaje"}}, nil)
		serviceRepo.EXPECT().FindByAppointmentID(gomock.Any(), 2).Return(nil, nil)

		grouped, err := service.GroupedByDate(context.Background(), owner)
		assert.NoError(t, err)
		assert.Len(t, grouped, 1)
		assert.Len(t, grouped["2026-09-01"], 2)
		assert.Equal(t, "ana", grouped["2026-09-01"][0].ClientUsername)
		assert.Equal(t, []string{"Masaje"}, grouped["2026-09-01"][0].Services)
	})
}
