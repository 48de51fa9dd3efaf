package service

import (
	"time"

	"github.com/LeandroPanozzo/Spa-produccion/internal/config"
	"github.com/LeandroPanozzo/Spa-produccion/internal/handlers/announcements"
	"github.com/LeandroPanozzo/Spa-produccion/internal/handlers/appointments"
	"github.com/LeandroPanozzo/Spa-produccion/internal/handlers/auth"
	"github.com/LeandroPanozzo/Spa-produccion/internal/handlers/catalog"
	"github.com/LeandroPanozzo/Spa-produccion/internal/handlers/payments"
	"github.com/LeandroPanozzo/Spa-produccion/internal/handlers/posts"
	"github.com/LeandroPanozzo/Spa-produccion/internal/handlers/queries"

	pkgauth "github.com/LeandroPanozzo/Spa-produccion/pkg/auth"

	"github.com/LeandroPanozzo/Spa-produccion/internal/repo"
	announcementservice "github.com/LeandroPanozzo/Spa-produccion/internal/service/announcementservice"
	appointmentservice "github.com/LeandroPanozzo/Spa-produccion/internal/service/appointmentservice"
	authservice "github.com/LeandroPanozzo/Spa-produccion/internal/service/authservice"
	catalogservice "github.com/LeandroPanozzo/Spa-produccion/internal/service/catalogservice"
	paymentservice "github.com/LeandroPanozzo/Spa-produccion/internal/service/paymentservice"
	postservice "github.com/LeandroPanozzo/Spa-produccion/internal/service/postservice"
	queryservice "github.com/LeandroPanozzo/Spa-produccion/internal/service/queryservice"
)

type Services struct {
	AuthService    auth.Service
	PaymentService payments.Service
	// AppointmentService stays concrete: the handler sees it through
	// appointments.Service, the sweeper through sweeper.Sweep.
	AppointmentService  *appointmentservice.Service
	CatalogService      catalog.Service
	QueryService        queries.Service
	PostService         posts.Service
	AnnouncementService announcements.Service
}

var _ appointments.Service = (*appointmentservice.Service)(nil)

func New(repo *repo.Repositories, cfg *config.Config, dispatcher paymentservice.InvoiceDispatcher) *Services {
	appointmentService := appointmentservice.New(repo.AppointmentRepo, repo.ServiceRepo, repo.UserRepo)
	paymentService := paymentservice.New(
		repo.PaymentRepo,
		repo.AppointmentRepo,
		repo.ServiceRepo,
		repo.UserRepo,
		dispatcher,
		paymentservice.CompanyInfo{Name: cfg.CompanyName, Address: cfg.CompanyAddress},
	)
	authService := authservice.New(
		repo.UserRepo,
		&pkgauth.HashService{},
		&pkgauth.JWTService{},
		time.Duration(cfg.TokenTTLMin)*time.Minute,
	)

	return &Services{
		AuthService:         authService,
		AppointmentService:  appointmentService,
		PaymentService:      paymentService,
		CatalogService:      catalogservice.New(repo.ServiceRepo),
		QueryService:        queryservice.New(repo.QueryRepo),
		PostService:         postservice.New(repo.PostRepo, repo.UserRepo),
		AnnouncementService: announcementservice.New(repo.AnnouncementRepo),
	}
}
