package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/LeandroPanozzo/Spa-produccion/docs"
	"github.com/LeandroPanozzo/Spa-produccion/internal/handlers/auth"
	"github.com/LeandroPanozzo/Spa-produccion/internal/handlers/payments"
	"github.com/LeandroPanozzo/Spa-produccion/internal/invoice"
	"github.com/LeandroPanozzo/Spa-produccion/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		PaymentService: payments.NewMockService(ctrl),
	}

	h := New(services, invoice.NewPDFRenderer())
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockAppointmentHandler := NewMockAppointmentHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockCatalogHandler := NewMockCatalogHandler(ctrl)
	mockQueryHandler := NewMockQueryHandler(ctrl)
	mockPostHandler := NewMockPostHandler(ctrl)
	mockAnnouncementHandler := NewMockAnnouncementHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockPostHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockPostHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockAnnouncementHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:         mockAuthHandler,
		AppointmentHandler:  mockAppointmentHandler,
		PaymentHandler:      mockPaymentHandler,
		CatalogHandler:      mockCatalogHandler,
		QueryHandler:        mockQueryHandler,
		PostHandler:         mockPostHandler,
		AnnouncementHandler: mockAnnouncementHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/services", http.StatusOK},
		{"GET", "/api/posts", http.StatusOK},
		{"GET", "/api/posts/1", http.StatusOK},
		{"GET", "/api/announcements", http.StatusOK},
		{"GET", "/api/user/me", http.StatusUnauthorized},
		{"PUT", "/api/user/me", http.StatusUnauthorized},
		{"PUT", "/api/user/1/roles", http.StatusUnauthorized},
		{"GET", "/api/professionals", http.StatusUnauthorized},
		{"POST", "/api/appointments", http.StatusUnauthorized},
		{"GET", "/api/appointments", http.StatusUnauthorized},
		{"GET", "/api/appointments/by-professional", http.StatusUnauthorized},
		{"GET", "/api/appointments/by-day", http.StatusUnauthorized},
		{"GET", "/api/appointments/1", http.StatusUnauthorized},
		{"PUT", "/api/appointments/1/services", http.StatusUnauthorized},
		{"GET", "/api/appointments/1/invoice", http.StatusUnauthorized},
		{"POST", "/api/payments", http.StatusUnauthorized},
		{"GET", "/api/payments", http.StatusUnauthorized},
		{"GET", "/api/payment-types", http.StatusUnauthorized},
		{"POST", "/api/services", http.StatusUnauthorized},
		{"PUT", "/api/services/1", http.StatusUnauthorized},
		{"DELETE", "/api/services/1", http.StatusUnauthorized},
		{"POST", "/api/queries", http.StatusUnauthorized},
		{"GET", "/api/queries/1/responses", http.StatusUnauthorized},
		{"POST", "/api/posts", http.StatusUnauthorized},
		{"POST", "/api/announcements", http.StatusUnauthorized},
		{"DELETE", "/api/announcements/1", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
