package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/dto"
	"github.com/LeandroPanozzo/Spa-produccion/internal/service/authservice"
	pkgauth "github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withPrincipal(req *http.Request, principal pkgauth.Principal) *http.Request {
	ctx := context.WithValue(req.Context(), pkgauth.PrincipalKey, principal)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"username":"ana","email":"ana@example.com","password":"password123","first_name":"Ana","last_name":"Paz"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), authservice.Registration{
					Username:  "ana",
					Email:     "ana@example.com",
					Password:  "password123",
					FirstName: "Ana",
					LastName:  "Paz",
				}).Return(&domain.User{ID: 1, Username: "ana", Email: "ana@example.com"}, nil)
				service.EXPECT().GenerateToken(gomock.Any()).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Username already taken",
			body: `{"username":"ana","email":"ana@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, authservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already taken",
		},
		{
			name: "Bad cuit",
			body: `{"username":"ana","email":"ana@example.com","password":"password123","cuit":"123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, authservice.ErrInvalidCUIT)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "cuit must be 11 numeric digits",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"username":"ana","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ana", "password123").
					Return(&domain.User{ID: 1, Username: "ana"}, nil)
				service.EXPECT().GenerateToken(gomock.Any()).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"ana","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ana", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestGetProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns the caller's profile", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), 1).Return(&domain.User{ID: 1, Username: "ana", Email: "ana@example.com"}, nil)

		req := withPrincipal(httptest.NewRequest("GET", "/api/user/me", nil), pkgauth.Principal{UserID: 1})
		rr := httptest.NewRecorder()

		handler.GetProfile(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.UserResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, "ana", resp.Username)
	})

	t.Run("Missing principal", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/user/me", nil)
		rr := httptest.NewRecorder()

		handler.GetProfile(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSetRolesHandler(t *testing.T) {
	handler, service := NewMock(t)

	owner := pkgauth.Principal{UserID: 1, IsOwner: true}

	t.Run("Owner grants roles", func(t *testing.T) {
		service.EXPECT().SetRoles(gomock.Any(), owner, 3, false, true, false).
			Return(&domain.User{ID: 3, IsProfessional: true}, nil)

		req := httptest.NewRequest("PUT", "/api/user/3/roles", bytes.NewReader([]byte(`{"is_owner":false,"is_professional":true,"is_secretary":false}`)))
		req = withPrincipal(withURLParam(req, "id", "3"), owner)
		rr := httptest.NewRecorder()

		handler.SetRoles(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Non-owner is rejected", func(t *testing.T) {
		client := pkgauth.Principal{UserID: 3}
		service.EXPECT().SetRoles(gomock.Any(), client, 4, false, false, true).
			Return(nil, authservice.ErrPermissionDenied)

		req := httptest.NewRequest("PUT", "/api/user/4/roles", bytes.NewReader([]byte(`{"is_secretary":true}`)))
		req = withPrincipal(withURLParam(req, "id", "4"), client)
		rr := httptest.NewRecorder()

		handler.SetRoles(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
