package repo

import (
	"github.com/LeandroPanozzo/Spa-produccion/internal/pg"
	announcementrepo "github.com/LeandroPanozzo/Spa-produccion/internal/repo/announcement-repo"
	appointmentrepo "github.com/LeandroPanozzo/Spa-produccion/internal/repo/appointment-repo"
	paymentrepo "github.com/LeandroPanozzo/Spa-produccion/internal/repo/payment-repo"
	postrepo "github.com/LeandroPanozzo/Spa-produccion/internal/repo/post-repo"
	queryrepo "github.com/LeandroPanozzo/Spa-produccion/internal/repo/query-repo"
	servicerepo "github.com/LeandroPanozzo/Spa-produccion/internal/repo/service-repo"
	userrepo "github.com/LeandroPanozzo/Spa-produccion/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	ServiceRepo      *servicerepo.Repository
	AppointmentRepo  *appointmentrepo.Repository
	PaymentRepo      *paymentrepo.Repository
	QueryRepo        *queryrepo.Repository
	PostRepo         *postrepo.Repository
	AnnouncementRepo *announcementrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		ServiceRepo:      servicerepo.New(conn),
		AppointmentRepo:  appointmentrepo.New(conn, txManager),
		PaymentRepo:      paymentrepo.New(conn, txManager),
		QueryRepo:        queryrepo.New(conn),
		PostRepo:         postrepo.New(conn),
		AnnouncementRepo: announcementrepo.New(conn),
	}
}
