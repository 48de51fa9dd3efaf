package paymentservice

import (
	"context"
	"testing"
	"time"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/invoice"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockAppointmentRepo, *MockServiceRepo, *MockUserRepo, *MockInvoiceDispatcher) {
	ctrl := gomock.NewController(t)
	paymentRepo := NewMockRepo(ctrl)
	appointmentRepo := NewMockAppointmentRepo(ctrl)
	serviceRepo := NewMockServiceRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	dispatcher := NewMockInvoiceDispatcher(ctrl)
	service := New(paymentRepo, appointmentRepo, serviceRepo, userRepo, dispatcher, CompanyInfo{Name: "SPA Sentirse Bien", Address: "Calle Falsa 123"})
	defer ctrl.Finish()
	return service, paymentRepo, appointmentRepo, serviceRepo, userRepo, dispatcher
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		services []domain.Service
		discount float64
		expected float64
	}{
		{
			name:     "Ten percent off two services",
			services: []domain.Service{{Price: 100.00}, {Price: 50.00}},
			discount: 0.10,
			expected: 135.00,
		},
		{
			name:     "No discount",
			services: []domain.Service{{Price: 100.00}, {Price: 50.00}},
			discount: 0,
			expected: 150.00,
		},
		{
			name:     "Rounded to two decimals",
			services: []domain.Service{{Price: 33.33}},
			discount: 0.5,
			expected: 16.67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Total(tt.services, tt.discount))
		})
	}
}

func TestCreate(t *testing.T) {
	service, paymentRepo, appointmentRepo, serviceRepo, userRepo, dispatcher := NewMock(t)

	services := []domain.Service{{ID: 1, Name: "Masaje", Price: 100.00}, {ID: 2, Name: "Facial", Price: 50.00}}

	tests := []struct {
		name          string
		discount      float64
		creditCard    string
		pin           string
		prepareMock   func()
		expectedTotal float64
		expectedError error
	}{
		{
			name:     "Payment is created and linked",
			discount: 0.10,
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1, ClientID: 3, ProfessionalID: 2}, nil)
				serviceRepo.EXPECT().FindByAppointmentID(gomock.Any(), 1).Return(services, nil)
				paymentRepo.EXPECT().FindPaymentTypeByID(gomock.Any(), 2).Return(&domain.PaymentType{ID: 2, Name: "Tarjeta de credito"}, nil)
				paymentRepo.EXPECT().SaveWithLink(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, payment *domain.Payment) error {
					payment.ID = 10
					payment.PaymentDate = time.Now()
					return nil
				})
				// invoice build fails fast so no dispatch goroutine is left behind
				userRepo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedTotal: 135.00,
		},
		{
			name:     "Appointment not found",
			discount: 0.10,
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrAppointmentNotFound,
		},
		{
			name:     "Already paid",
			discount: 0.10,
			prepareMock: func() {
				paymentID := 10
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1, PaymentID: &paymentID}, nil)
			},
			expectedError: ErrAlreadyPaid,
		},
		{
			name:     "No services means nothing is persisted",
			discount: 0.10,
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1}, nil)
				serviceRepo.EXPECT().FindByAppointmentID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrNoServices,
		},
		{
			name:     "Discount of one is rejected",
			discount: 1,
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1}, nil)
				serviceRepo.EXPECT().FindByAppointmentID(gomock.Any(), 1).Return(services, nil)
			},
			expectedError: ErrInvalidDiscount,
		},
		{
			name:       "Short card is rejected",
			discount:   0.10,
			creditCard: "12345",
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1}, nil)
				serviceRepo.EXPECT().FindByAppointmentID(gomock.Any(), 1).Return(services, nil)
			},
			expectedError: ErrInvalidCreditCard,
		},
		{
			name:       "Card with letters is rejected",
			discount:   0.10,
			creditCard: "abcd123456789012",
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1}, nil)
				serviceRepo.EXPECT().FindByAppointmentID(gomock.Any(), 1).Return(services, nil)
			},
			expectedError: ErrInvalidCreditCard,
		},
		{
			name:       "Bad pin is rejected",
			discount:   0.10,
			creditCard: "1234567890123456",
			pin:        "12",
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1}, nil)
				serviceRepo.EXPECT().FindByAppointmentID(gomock.Any(), 1).Return(services, nil)
			},
			expectedError: ErrInvalidPIN,
		},
		{
			name:     "Unknown payment type",
			discount: 0.10,
			prepareMock: func() {
				appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1}, nil)
				serviceRepo.EXPECT().FindByAppointmentID(gomock.Any(), 1).Return(services, nil)
				paymentRepo.EXPECT().FindPaymentTypeByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrPaymentTypeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			payment, err := service.Create(context.Background(), 1, 2, tt.discount, tt.creditCard, tt.pin)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, payment)
			assert.Equal(t, tt.expectedTotal, payment.TotalPayment)
			assert.Equal(t, 1, payment.AppointmentID)
		})
	}

	_ = dispatcher
	_ = userRepo
}

func TestCreateDispatchesInvoice(t *testing.T) {
	service, paymentRepo, appointmentRepo, serviceRepo, userRepo, dispatcher := NewMock(t)

	services := []domain.Service{{ID: 1, Name: "Masaje", Price: 100.00}}

	appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Appointment{ID: 1, ClientID: 3, ProfessionalID: 2}, nil)
	serviceRepo.EXPECT().FindByAppointmentID(gomock.Any(), 1).Return(services, nil)
	paymentRepo.EXPECT().FindPaymentTypeByID(gomock.Any(), 1).Return(&domain.PaymentType{ID: 1, Name: "Efectivo"}, nil)
	paymentRepo.EXPECT().SaveWithLink(gomock.Any(), gomock.Any()).Return(nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.User{ID: 3, FirstName: "Ana", LastName: "Paz", Email: "ana@example.com"}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, FirstName: "Lio", LastName: "Gomez"}, nil)

	dispatched := make(chan *invoice.Invoice, 1)
	dispatcher.EXPECT().Dispatch(gomock.Any()).DoAndReturn(func(inv *invoice.Invoice) error {
		dispatched <- inv
		return nil
	})

	payment, err := service.Create(context.Background(), 1, 1, 0, "", "")
	assert.NoError(t, err)
	assert.NotNil(t, payment)

	select {
	case inv := <-dispatched:
		assert.Equal(t, "ana@example.com", inv.ClientEmail)
		assert.Equal(t, 100.00, inv.Subtotal)
		assert.Equal(t, payment.TotalPayment, inv.Total)
	case <-time.After(time.Second):
		t.Fatal("invoice was not dispatched")
	}
}

func TestList(t *testing.T) {
	service, paymentRepo, _, _, _, _ := NewMock(t)

	t.Run("Staff only", func(t *testing.T) {
		_, err := service.List(context.Background(), auth.Principal{UserID: 3}, nil, nil)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("Owner lists payments", func(t *testing.T) {
		paymentRepo.EXPECT().FindBetween(gomock.Any(), nil, nil).Return([]domain.PaymentListItem{
			{Payment: domain.Payment{ID: 1, TotalPayment: 135.00}, ClientFirstName: "Ana", PaymentTypeName: "Efectivo"},
		}, nil)

		items, err := service.List(context.Background(), auth.Principal{UserID: 1, IsOwner: true}, nil, nil)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "Ana", items[0].ClientFirstName)
	})
}

func TestBuildInvoice(t *testing.T) {
	service, paymentRepo, appointmentRepo, serviceRepo, userRepo, _ := NewMock(t)

	appointment := &domain.Appointment{ID: 1, ClientID: 3, ProfessionalID: 2, AppointmentDate: time.Now()}

	t.Run("Other client is rejected", func(t *testing.T) {
		appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(appointment, nil)

		_, err := service.BuildInvoice(context.Background(), auth.Principal{UserID: 8}, 1)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("Client downloads own invoice", func(t *testing.T) {
		appointmentRepo.EXPECT().FindByID(gomock.Any(), 1).Return(appointment, nil)
		paymentRepo.EXPECT().FindByAppointmentID(gomock.Any(), 1).Return(&domain.Payment{ID: 10, TotalPayment: 90.00, Discount: 0.10}, nil)
		serviceRepo.EXPECT().FindByAppointmentID(gomock.Any(), 1).Return([]domain.Service{{ID: 1, Name: "Masaje", Price: 100.00}}, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.User{ID: 3, FirstName: "Ana", Email: "ana@example.com"}, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, FirstName: "Lio"}, nil)

		inv, err := service.BuildInvoice(context.Background(), auth.Principal{UserID: 3}, 1)
		assert.NoError(t, err)
		assert.Equal(t, 10, inv.Number)
		assert.Equal(t, 100.00, inv.Subtotal)
		assert.Equal(t, 90.00, inv.Total)
		assert.Len(t, inv.Lines, 1)
	})
}
