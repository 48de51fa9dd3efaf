package appointmentservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
)

type Repo interface {
	Save(ctx context.Context, appointment *domain.Appointment, serviceIDs []int) error
	FindByID(ctx context.Context, id int) (*domain.Appointment, error)
	FindAll(ctx context.Context) ([]domain.Appointment, error)
	FindByClientID(ctx context.Context, clientID int) ([]domain.Appointment, error)
	FindByParticipant(ctx context.Context, userID int) ([]domain.Appointment, error)
	FindFiltered(ctx context.Context, professionalID *int, from, to *time.Time) ([]domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) error
	ReplaceServices(ctx context.Context, appointmentID int, serviceIDs []int) error
	Delete(ctx context.Context, id int) error
	DeleteExpiredUnpaid(ctx context.Context, now time.Time) (int64, error)
}

type ServiceRepo interface {
	FindByIDs(ctx context.Context, ids []int) ([]domain.Service, error)
	FindByAppointmentID(ctx context.Context, appointmentID int) ([]domain.Service, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	appointmentRepo Repo
	serviceRepo     ServiceRepo
	userRepo        UserRepo
}

func New(appointmentRepo Repo, serviceRepo ServiceRepo, userRepo UserRepo) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		userRepo:        userRepo,
	}
}

const (
	// paymentWindow is how close the appointment date has to be for a
	// payment deadline to apply at all.
	paymentWindow = 48 * time.Hour
	// paymentGrace is how long the client has to pay once the deadline
	// applies, counted from creation.
	paymentGrace = 30 * time.Minute
)

var (
	ErrPermissionDenied      = errors.New("permission denied")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrNoServices            = errors.New("appointment has no services")
	ErrServiceNotFound       = errors.New("service not found")
	ErrProfessionalNotFound  = errors.New("professional not found")
	ErrNotProfessional       = errors.New("user is not a professional")
	ErrAppointmentHasPayment = errors.New("appointment already has a payment")
)

// Create books an appointment for the calling client. Near-term
// appointments (within 48 hours) get a payment deadline of creation time
// plus 30 minutes; the deadline is computed once, before the row is written.
func (s *Service) Create(ctx context.Context, principal auth.Principal, professionalID int, serviceIDs []int, appointmentDate time.Time) (*domain.Appointment, error) {
	if principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if len(serviceIDs) == 0 {
		return nil, ErrNoServices
	}

	services, err := s.serviceRepo.FindByIDs(ctx, serviceIDs)
	if err != nil {
		zap.L().Error("can't load services", zap.Error(err))
		return nil, err
	}
	if len(services) != len(serviceIDs) {
		return nil, ErrServiceNotFound
	}

	professional, err := s.userRepo.FindByID(ctx, professionalID)
	if err != nil {
		zap.L().Error("can't load professional", zap.Error(err))
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}
	if !professional.IsProfessional {
		return nil, ErrNotProfessional
	}

	now := time.Now()
	appointment := &domain.Appointment{
		ClientID:        principal.UserID,
		ProfessionalID:  professionalID,
		AppointmentDate: appointmentDate,
	}
	if !appointmentDate.After(now.Add(paymentWindow)) {
		deadline := now.Add(paymentGrace)
		appointment.PaymentDeadline = &deadline
	}

	if err := s.appointmentRepo.Save(ctx, appointment, serviceIDs); err != nil {
		zap.L().Error("can't save appointment", zap.Error(err))
		return nil, err
	}

	zap.L().Info("appointment created",
		zap.Int("appointmentID", appointment.ID),
		zap.Int("clientID", principal.UserID),
		zap.Bool("hasDeadline", appointment.PaymentDeadline != nil),
	)
	return appointment, nil
}

// List returns the appointments the principal may see: staff see all,
// professionals see those where they are either party, clients see their
// own.
func (s *Service) List(ctx context.Context, principal auth.Principal) ([]domain.Appointment, error) {
	switch {
	case principal.IsStaff():
		return s.appointmentRepo.FindAll(ctx)
	case principal.IsProfessional:
		return s.appointmentRepo.FindByParticipant(ctx, principal.UserID)
	default:
		return s.appointmentRepo.FindByClientID(ctx, principal.UserID)
	}
}

func (s *Service) Get(ctx context.Context, principal auth.Principal, id int) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !principal.IsStaff() && appointment.ClientID != principal.UserID && appointment.ProfessionalID != principal.UserID {
		return nil, ErrPermissionDenied
	}
	return appointment, nil
}

// UpdateFields is the set of editable appointment fields; nil means keep.
type UpdateFields struct {
	ProfessionalID  *int
	AppointmentDate *time.Time
}

// Update is restricted to staff; each field is validated and assigned
// explicitly.
func (s *Service) Update(ctx context.Context, principal auth.Principal, id int, fields UpdateFields) (*domain.Appointment, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if fields.ProfessionalID != nil {
		professional, err := s.userRepo.FindByID(ctx, *fields.ProfessionalID)
		if err != nil {
			return nil, err
		}
		if professional == nil {
			return nil, ErrProfessionalNotFound
		}
		if !professional.IsProfessional {
			return nil, ErrNotProfessional
		}
		appointment.ProfessionalID = *fields.ProfessionalID
	}
	if fields.AppointmentDate != nil {
		appointment.AppointmentDate = *fields.AppointmentDate
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ReplaceServices swaps the service set of an unpaid appointment. Allowed
// for staff and for the appointment's own client.
func (s *Service) ReplaceServices(ctx context.Context, principal auth.Principal, id int, serviceIDs []int) error {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if !principal.IsStaff() && appointment.ClientID != principal.UserID {
		return ErrPermissionDenied
	}
	if appointment.PaymentID != nil {
		return ErrAppointmentHasPayment
	}
	if len(serviceIDs) == 0 {
		return ErrNoServices
	}
	services, err := s.serviceRepo.FindByIDs(ctx, serviceIDs)
	if err != nil {
		return err
	}
	if len(services) != len(serviceIDs) {
		return ErrServiceNotFound
	}
	return s.appointmentRepo.ReplaceServices(ctx, id, serviceIDs)
}

func (s *Service) Delete(ctx context.Context, principal auth.Principal, id int) error {
	if !principal.IsStaff() {
		return ErrPermissionDenied
	}
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	return s.appointmentRepo.Delete(ctx, id)
}

// ServicesFor loads the services attached to an appointment.
func (s *Service) ServicesFor(ctx context.Context, appointmentID int) ([]domain.Service, error) {
	return s.serviceRepo.FindByAppointmentID(ctx, appointmentID)
}

// SweepExpiredUnpaid deletes every appointment whose deadline has passed
// without a payment. Safe to call concurrently with payment creation: the
// unpaid check is re-evaluated inside the delete statement.
func (s *Service) SweepExpiredUnpaid(ctx context.Context, now time.Time) (int64, error) {
	deleted, err := s.appointmentRepo.DeleteExpiredUnpaid(ctx, now)
	if err != nil {
		zap.L().Error("sweep of unpaid appointments failed", zap.Error(err))
		return 0, err
	}
	if deleted > 0 {
		zap.L().Info("swept expired unpaid appointments", zap.Int64("deleted", deleted))
	}
	return deleted, nil
}

// Visit is one appointment row in the owner dashboards.
type Visit struct {
	ClientUsername  string
	ClientFirstName string
	ClientLastName  string
	AppointmentDate time.Time
	Services        []string
}

// ClientsByProfessional groups upcoming visits by professional full name,
// ordered by appointment time. Owners see everything; professionals only
// themselves.
func (s *Service) ClientsByProfessional(ctx context.Context, principal auth.Principal, professionalID *int, from, to *time.Time) (map[string][]Visit, error) {
	if !principal.IsOwner && !principal.IsProfessional {
		return nil, ErrPermissionDenied
	}
	if !principal.IsOwner {
		professionalID = &principal.UserID
	}

	appointments, err := s.appointmentRepo.FindFiltered(ctx, professionalID, from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.loadVisits(ctx, appointments, true)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]Visit)
	for _, row := range rows {
		if row.client == nil || row.professional == nil {
			continue
		}
		key := row.professional.FirstName + " " + row.professional.LastName
		grouped[key] = append(grouped[key], row.visit)
	}
	return grouped, nil
}

// GroupedByDate groups all appointments by calendar day; owner only.
func (s *Service) GroupedByDate(ctx context.Context, principal auth.Principal) (map[string][]Visit, error) {
	if !principal.IsOwner {
		return nil, ErrPermissionDenied
	}

	appointments, err := s.appointmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.loadVisits(ctx, appointments, false)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]Visit)
	for _, row := range rows {
		if row.client == nil {
			continue
		}
		key := row.appointment.AppointmentDate.Format("2006-01-02")
		grouped[key] = append(grouped[key], row.visit)
	}
	return grouped, nil
}

// visitRow keeps a built visit next to the users it was resolved
// against; callers skip rows whose users are gone.
type visitRow struct {
	appointment  domain.Appointment
	professional *domain.User
	client       *domain.User
	visit        Visit
}

// loadVisits resolves users and services for every appointment
// concurrently. Results keep the order of the input slice.
func (s *Service) loadVisits(ctx context.Context, appointments []domain.Appointment, withProfessional bool) ([]visitRow, error) {
	rows := make([]visitRow, len(appointments))

	var g errgroup.Group
	for i, appointment := range appointments {
		i, appointment := i, appointment

		g.Go(func() error {
			rows[i].appointment = appointment

			client, err := s.userRepo.FindByID(ctx, appointment.ClientID)
			if err != nil {
				return err
			}
			rows[i].client = client
			if client == nil {
				return nil
			}

			if withProfessional {
				professional, err := s.userRepo.FindByID(ctx, appointment.ProfessionalID)
				if err != nil {
					return err
				}
				rows[i].professional = professional
				if professional == nil {
					return nil
				}
			}

			visit, err := s.buildVisit(ctx, appointment, client)
			if err != nil {
				return err
			}
			rows[i].visit = visit
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) buildVisit(ctx context.Context, appointment domain.Appointment, client *domain.User) (Visit, error) {
	services, err := s.serviceRepo.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return Visit{}, err
	}
	names := make([]string, 0, len(services))
	for _, service := range services {
		names = append(names, service.Name)
	}
	return Visit{
		ClientUsername:  client.Username,
		ClientFirstName: client.FirstName,
		ClientLastName:  client.LastName,
		AppointmentDate: appointment.AppointmentDate,
		Services:        names,
	}, nil
}
