package handlers

import (
	"net/http"

	_ "github.com/LeandroPanozzo/Spa-produccion/docs"
	announcementhandlers "github.com/LeandroPanozzo/Spa-produccion/internal/handlers/announcements"
	appointmenthandlers "github.com/LeandroPanozzo/Spa-produccion/internal/handlers/appointments"
	authhandlers "github.com/LeandroPanozzo/Spa-produccion/internal/handlers/auth"
	cataloghandlers "github.com/LeandroPanozzo/Spa-produccion/internal/handlers/catalog"
	paymenthandlers "github.com/LeandroPanozzo/Spa-produccion/internal/handlers/payments"
	posthandlers "github.com/LeandroPanozzo/Spa-produccion/internal/handlers/posts"
	queryhandlers "github.com/LeandroPanozzo/Spa-produccion/internal/handlers/queries"
	"github.com/LeandroPanozzo/Spa-produccion/internal/invoice"
	"github.com/LeandroPanozzo/Spa-produccion/internal/service"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	SetRoles(w http.ResponseWriter, r *http.Request)
	ListProfessionals(w http.ResponseWriter, r *http.Request)
}

type AppointmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ReplaceServices(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ClientsByProfessional(w http.ResponseWriter, r *http.Request)
	GroupedByDate(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListPaymentTypes(w http.ResponseWriter, r *http.Request)
	DownloadInvoice(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type QueryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
	Responses(w http.ResponseWriter, r *http.Request)
}

type PostHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	AppointmentHandler  AppointmentHandler
	PaymentHandler      PaymentHandler
	CatalogHandler      CatalogHandler
	QueryHandler        QueryHandler
	PostHandler         PostHandler
	AnnouncementHandler AnnouncementHandler
}

func New(s *service.Services, renderer invoice.Renderer) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		AppointmentHandler:  appointmenthandlers.New(s.AppointmentService),
		PaymentHandler:      paymenthandlers.New(s.PaymentService, renderer),
		CatalogHandler:      cataloghandlers.New(s.CatalogService),
		QueryHandler:        queryhandlers.New(s.QueryService),
		PostHandler:         posthandlers.New(s.PostService),
		AnnouncementHandler: announcementhandlers.New(s.AnnouncementService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)
		r.Get("/services", h.CatalogHandler.List)
		r.Get("/posts", h.PostHandler.List)
		r.Get("/posts/{id}", h.PostHandler.Get)
		r.Get("/announcements", h.AnnouncementHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			// prefixes shared with the public routes above are registered
			// flat to avoid mounting twice
			r.Get("/user/me", h.AuthHandler.GetProfile)
			r.Put("/user/me", h.AuthHandler.UpdateProfile)
			r.Put("/user/{id}/roles", h.AuthHandler.SetRoles)
			r.Get("/professionals", h.AuthHandler.ListProfessionals)
			r.Route("/appointments", func(r chi.Router) {
				r.Post("/", h.AppointmentHandler.Create)
				r.Get("/", h.AppointmentHandler.List)
				r.Get("/by-professional", h.AppointmentHandler.ClientsByProfessional)
				r.Get("/by-day", h.AppointmentHandler.GroupedByDate)
				r.Get("/{id}", h.AppointmentHandler.Get)
				r.Put("/{id}", h.AppointmentHandler.Update)
				r.Delete("/{id}", h.AppointmentHandler.Delete)
				r.Put("/{id}/services", h.AppointmentHandler.ReplaceServices)
				r.Get("/{id}/invoice", h.PaymentHandler.DownloadInvoice)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.PaymentHandler.Create)
				r.Get("/", h.PaymentHandler.List)
			})
			r.Get("/payment-types", h.PaymentHandler.ListPaymentTypes)
			r.Post("/services", h.CatalogHandler.Create)
			r.Put("/services/{id}", h.CatalogHandler.Update)
			r.Delete("/services/{id}", h.CatalogHandler.Delete)
			r.Route("/queries", func(r chi.Router) {
				r.Post("/", h.QueryHandler.Create)
				r.Get("/", h.QueryHandler.List)
				r.Get("/{id}", h.QueryHandler.Get)
				r.Delete("/{id}", h.QueryHandler.Delete)
				r.Post("/{id}/responses", h.QueryHandler.Respond)
				r.Get("/{id}/responses", h.QueryHandler.Responses)
			})
			r.Post("/posts", h.PostHandler.Create)
			r.Put("/posts/{id}", h.PostHandler.Update)
			r.Delete("/posts/{id}", h.PostHandler.Delete)
			r.Post("/announcements", h.AnnouncementHandler.Create)
			r.Delete("/announcements/{id}", h.AnnouncementHandler.Delete)
		})
	})

	return r
}
