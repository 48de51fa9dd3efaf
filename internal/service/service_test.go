package service

import (
	"testing"

	"github.com/LeandroPanozzo/Spa-produccion/internal/config"
	"github.com/LeandroPanozzo/Spa-produccion/internal/invoice"
	"github.com/LeandroPanozzo/Spa-produccion/internal/pg"
	"github.com/LeandroPanozzo/Spa-produccion/internal/repo"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(inv *invoice.Invoice) error { return nil }

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	cfg := &config.Config{TokenTTLMin: 60, CompanyName: "SPA Sentirse Bien"}

	services := New(repos, cfg, noopDispatcher{})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AppointmentService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.QueryService)
	assert.NotNil(t, services.PostService)
	assert.NotNil(t, services.AnnouncementService)
}
