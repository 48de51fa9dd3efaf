package announcementservice

import (
	"context"
	"errors"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error)
	FindByID(ctx context.Context, id int) (*domain.Announcement, error)
	FindAll(ctx context.Context) ([]domain.Announcement, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	announcementRepo Repo
}

func New(announcementRepo Repo) *Service {
	return &Service{announcementRepo: announcementRepo}
}

var (
	ErrPermissionDenied     = errors.New("permission denied")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// Create publishes an announcement; owner or secretary only.
func (s *Service) Create(ctx context.Context, principal auth.Principal, title, content, dateDescription string) (*domain.Announcement, error) {
	if !principal.IsOwner && !principal.IsSecretary {
		return nil, ErrPermissionDenied
	}
	userID := principal.UserID
	announcement := &domain.Announcement{
		Title:           title,
		Content:         content,
		DateDescription: dateDescription,
		UserID:          &userID,
	}
	saved, err := s.announcementRepo.Save(ctx, announcement)
	if err != nil {
		zap.L().Error("can't create announcement", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

// List returns announcements newest first.
func (s *Service) List(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcementRepo.FindAll(ctx)
}

func (s *Service) Delete(ctx context.Context, principal auth.Principal, id int) error {
	if !principal.IsOwner && !principal.IsSecretary {
		return ErrPermissionDenied
	}
	announcement, err := s.announcementRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if announcement == nil {
		return ErrAnnouncementNotFound
	}
	return s.announcementRepo.Delete(ctx, id)
}
