package announcementservice

import (
	"context"
	"testing"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	announcementRepo := NewMockRepo(ctrl)
	service := New(announcementRepo)
	defer ctrl.Finish()
	return service, announcementRepo
}

func TestCreate(t *testing.T) {
	service, announcementRepo := NewMock(t)

	t.Run("Secretary publishes an announcement", func(t *testing.T) {
		announcementRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error) {
			announcement.ID = 1
			return announcement, nil
		})

		announcement, err := service.Create(context.Background(), auth.Principal{UserID: 2, IsSecretary: true}, "Feriado", "Cerramos el lunes", "Lunes 8 de diciembre")
		assert.NoError(t, err)
		assert.Equal(t, 1, announcement.ID)
		assert.NotNil(t, announcement.UserID)
		assert.Equal(t, 2, *announcement.UserID)
	})

	t.Run("Professionals cannot publish", func(t *testing.T) {
		_, err := service.Create(context.Background(), auth.Principal{UserID: 4, IsProfessional: true}, "Feriado", "Cerramos", "")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("Clients cannot publish", func(t *testing.T) {
		_, err := service.Create(context.Background(), auth.Principal{UserID: 3}, "Feriado", "Cerramos", "")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestDelete(t *testing.T) {
	service, announcementRepo := NewMock(t)

	t.Run("Owner deletes an announcement", func(t *testing.T) {
		announcementRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Announcement{ID: 1}, nil)
		announcementRepo.EXPECT().Delete(gomock.Any(), 1).Return(nil)

		err := service.Delete(context.Background(), auth.Principal{UserID: 1, IsOwner: true}, 1)
		assert.NoError(t, err)
	})

	t.Run("Unknown announcement", func(t *testing.T) {
		announcementRepo.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)

		err := service.Delete(context.Background(), auth.Principal{UserID: 1, IsOwner: true}, 9)
		assert.ErrorIs(t, err, ErrAnnouncementNotFound)
	})

	t.Run("Clients cannot delete", func(t *testing.T) {
		err := service.Delete(context.Background(), auth.Principal{UserID: 3}, 1)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}
