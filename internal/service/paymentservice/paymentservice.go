package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/invoice"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	SaveWithLink(ctx context.Context, payment *domain.Payment) error
	FindByAppointmentID(ctx context.Context, appointmentID int) (*domain.Payment, error)
	FindBetween(ctx context.Context, from, to *time.Time) ([]domain.PaymentListItem, error)
	FindPaymentTypes(ctx context.Context) ([]domain.PaymentType, error)
	FindPaymentTypeByID(ctx context.Context, id int) (*domain.PaymentType, error)
}

type AppointmentRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Appointment, error)
}

type ServiceRepo interface {
	FindByAppointmentID(ctx context.Context, appointmentID int) ([]domain.Service, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// InvoiceDispatcher delivers the invoice to the client after a payment is
// created. Dispatch failures never fail the payment.
type InvoiceDispatcher interface {
	Dispatch(inv *invoice.Invoice) error
}

type CompanyInfo struct {
	Name    string
	Address string
}

type Service struct {
	paymentRepo     Repo
	appointmentRepo AppointmentRepo
	serviceRepo     ServiceRepo
	userRepo        UserRepo
	dispatcher      InvoiceDispatcher
	company         CompanyInfo
}

func New(paymentRepo Repo, appointmentRepo AppointmentRepo, serviceRepo ServiceRepo, userRepo UserRepo, dispatcher InvoiceDispatcher, company CompanyInfo) *Service {
	return &Service{
		paymentRepo:     paymentRepo,
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		userRepo:        userRepo,
		dispatcher:      dispatcher,
		company:         company,
	}
}

var (
	ErrPermissionDenied    = errors.New("permission denied")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNoServices          = errors.New("appointment has no services")
	ErrAlreadyPaid         = errors.New("appointment already has a payment")
	ErrInvalidDiscount     = errors.New("discount must be a fraction in [0, 1)")
	ErrInvalidCreditCard   = errors.New("invalid credit card number")
	ErrInvalidPIN          = errors.New("invalid pin")
	ErrPaymentTypeNotFound = errors.New("payment type not found")
)

// Total returns sum(prices) * (1 - discount) rounded to 2 decimals.
func Total(services []domain.Service, discount float64) float64 {
	sum := decimal.Zero
	for _, service := range services {
		sum = sum.Add(decimal.NewFromFloat(service.Price))
	}
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(discount))
	return sum.Mul(factor).Round(2).InexactFloat64()
}

// Create charges an appointment: it validates the request, derives the
// total from the appointment's services and the discount, and persists the
// payment linked to the appointment in one transaction. The invoice email
// is dispatched afterwards as a fire-and-forget follow-up.
func (s *Service) Create(ctx context.Context, appointmentID, paymentTypeID int, discount float64, creditCard, pin string) (*domain.Payment, error) {
	appointment, err := s.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		zap.L().Error("can't load appointment", zap.Error(err))
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PaymentID != nil {
		return nil, ErrAlreadyPaid
	}

	services, err := s.serviceRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		zap.L().Error("can't load appointment services", zap.Error(err))
		return nil, err
	}
	if len(services) == 0 {
		return nil, ErrNoServices
	}

	if discount < 0 || discount >= 1 {
		return nil, ErrInvalidDiscount
	}
	if creditCard != "" && !validate.IsCreditCard(creditCard) {
		return nil, ErrInvalidCreditCard
	}
	if pin != "" && !validate.IsPIN(pin) {
		return nil, ErrInvalidPIN
	}

	paymentType, err := s.paymentRepo.FindPaymentTypeByID(ctx, paymentTypeID)
	if err != nil {
		zap.L().Error("can't load payment type", zap.Error(err))
		return nil, err
	}
	if paymentType == nil {
		return nil, ErrPaymentTypeNotFound
	}

	payment := &domain.Payment{
		TotalPayment:  Total(services, discount),
		Discount:      discount,
		PaymentTypeID: paymentTypeID,
		CreditCard:    creditCard,
		PIN:           pin,
		AppointmentID: appointmentID,
	}
	if err := s.paymentRepo.SaveWithLink(ctx, payment); err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}

	zap.L().Info("payment created",
		zap.Int("paymentID", payment.ID),
		zap.Int("appointmentID", appointmentID),
		zap.Float64("total", payment.TotalPayment),
	)

	inv, err := s.buildInvoice(ctx, appointment, payment, services)
	if err != nil {
		zap.L().Error("can't build invoice, skipping dispatch", zap.Error(err))
		return payment, nil
	}
	go func() {
		if err := s.dispatcher.Dispatch(inv); err != nil {
			zap.L().Error("invoice dispatch failed",
				zap.Int("appointmentID", appointmentID), zap.Error(err))
		}
	}()

	return payment, nil
}

// List returns payments with client and payment type names; staff only.
// Bounds are half-open [from, to).
func (s *Service) List(ctx context.Context, principal auth.Principal, from, to *time.Time) ([]domain.PaymentListItem, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	items, err := s.paymentRepo.FindBetween(ctx, from, to)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *Service) ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	return s.paymentRepo.FindPaymentTypes(ctx)
}

// BuildInvoice assembles the invoice snapshot for a paid appointment.
// Staff and the appointment's client may request it.
func (s *Service) BuildInvoice(ctx context.Context, principal auth.Principal, appointmentID int) (*invoice.Invoice, error) {
	appointment, err := s.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !principal.IsStaff() && appointment.ClientID != principal.UserID {
		return nil, ErrPermissionDenied
	}
	payment, err := s.paymentRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrAppointmentNotFound
	}
	services, err := s.serviceRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	return s.buildInvoice(ctx, appointment, payment, services)
}

func (s *Service) buildInvoice(ctx context.Context, appointment *domain.Appointment, payment *domain.Payment, services []domain.Service) (*invoice.Invoice, error) {
	client, err := s.userRepo.FindByID(ctx, appointment.ClientID)
	if err != nil {
		return nil, err
	}
	professional, err := s.userRepo.FindByID(ctx, appointment.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if client == nil || professional == nil {
		return nil, ErrAppointmentNotFound
	}

	subtotal := decimal.Zero
	lines := make([]invoice.Line, 0, len(services))
	for _, service := range services {
		subtotal = subtotal.Add(decimal.NewFromFloat(service.Price))
		lines = append(lines, invoice.Line{
			ServiceID: service.ID,
			Name:      service.Name,
			Price:     service.Price,
		})
	}

	return &invoice.Invoice{
		Number:          payment.ID,
		IssuedAt:        time.Now(),
		CompanyName:     s.company.Name,
		CompanyAddress:  s.company.Address,
		ClientFirstName: client.FirstName,
		ClientLastName:  client.LastName,
		ClientEmail:     client.Email,
		ClientCUIT:      client.CUIT,
		Professional:    professional.FirstName + " " + professional.LastName,
		AppointmentID:   appointment.ID,
		AppointmentDate: appointment.AppointmentDate,
		Lines:           lines,
		Subtotal:        subtotal.Round(2).InexactFloat64(),
		Discount:        payment.Discount,
		Total:           payment.TotalPayment,
	}, nil
}
