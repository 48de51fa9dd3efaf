package catalogservice

import (
	"context"
	"errors"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindAll(ctx context.Context) ([]domain.Service, error)
	FindByID(ctx context.Context, id int) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id int) error
	IsReferencedByPayment(ctx context.Context, id int) (bool, error)
}

type Service struct {
	serviceRepo Repo
}

func New(serviceRepo Repo) *Service {
	return &Service{serviceRepo: serviceRepo}
}

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrPriceLocked      = errors.New("price is frozen once a payment references the service")
)

func (s *Service) List(ctx context.Context) ([]domain.Service, error) {
	return s.serviceRepo.FindAll(ctx)
}

func (s *Service) Create(ctx context.Context, principal auth.Principal, name string, price float64) (*domain.Service, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	service := &domain.Service{Name: name, Price: price}
	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		zap.L().Error("can't create service", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Update edits a catalog entry. A price change is rejected once any payment
// references the service: captured prices stay meaningful.
func (s *Service) Update(ctx context.Context, principal auth.Principal, id int, name string, price float64) (*domain.Service, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	if price != service.Price {
		referenced, err := s.serviceRepo.IsReferencedByPayment(ctx, id)
		if err != nil {
			return nil, err
		}
		if referenced {
			return nil, ErrPriceLocked
		}
		service.Price = price
	}
	service.Name = name

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		zap.L().Error("can't update service", zap.Error(err))
		return nil, err
	}
	return service, nil
}

func (s *Service) Delete(ctx context.Context, principal auth.Principal, id int) error {
	if !principal.IsStaff() {
		return ErrPermissionDenied
	}
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if service == nil {
		return ErrServiceNotFound
	}
	return s.serviceRepo.Delete(ctx, id)
}
