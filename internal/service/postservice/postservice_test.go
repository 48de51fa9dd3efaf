package postservice

import (
	"context"
	"testing"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	postRepo := NewMockRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(postRepo, userRepo)
	defer ctrl.Finish()
	return service, postRepo, userRepo
}

func TestCreate(t *testing.T) {
	service, postRepo, userRepo := NewMock(t)

	client := auth.Principal{UserID: 3}

	t.Run("Signed post carries the author's first name", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.User{ID: 3, FirstName: "Ana"}, nil)
		postRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, post *domain.Post) (*domain.Post, error) {
			post.ID = 1
			return post, nil
		})

		post, err := service.Create(context.Background(), client, "Titulo", "Contenido", "")
		assert.NoError(t, err)
		assert.Equal(t, "Ana", post.Alias)
		assert.NotNil(t, post.AuthorID)
		assert.Equal(t, 3, *post.AuthorID)
	})

	t.Run("Alias makes the post anonymous", func(t *testing.T) {
		postRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, post *domain.Post) (*domain.Post, error) {
			post.ID = 2
			return post, nil
		})

		post, err := service.Create(context.Background(), client, "Titulo", "Contenido", "Misterioso")
		assert.NoError(t, err)
		assert.Equal(t, "Misterioso", post.Alias)
		assert.Nil(t, post.AuthorID)
	})
}

func TestUpdate(t *testing.T) {
	service, postRepo, _ := NewMock(t)

	authorID := 3

	tests := []struct {
		name          string
		principal     auth.Principal
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Author edits own post",
			principal: auth.Principal{UserID: 3},
			prepareMock: func() {
				postRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Post{ID: 1, AuthorID: &authorID}, nil)
				postRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "Staff edit any post",
			principal: auth.Principal{UserID: 2, IsSecretary: true},
			prepareMock: func() {
				postRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Post{ID: 1, AuthorID: &authorID}, nil)
				postRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "Other client is rejected",
			principal: auth.Principal{UserID: 8},
			prepareMock: func() {
				postRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Post{ID: 1, AuthorID: &authorID}, nil)
			},
			expectedError: ErrPermissionDenied,
		},
		{
			name:      "Anonymous post belongs to nobody",
			principal: auth.Principal{UserID: 3},
			prepareMock: func() {
				postRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Post{ID: 1, Alias: "Misterioso"}, nil)
			},
			expectedError: ErrPermissionDenied,
		},
		{
			name:      "Unknown post",
			principal: auth.Principal{UserID: 3},
			prepareMock: func() {
				postRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			post, err := service.Update(context.Background(), tt.principal, 1, "Nuevo titulo", "Nuevo contenido")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Nuevo titulo", post.Title)
		})
	}
}

func TestDelete(t *testing.T) {
	service, postRepo, _ := NewMock(t)

	authorID := 3

	t.Run("Author deletes own post", func(t *testing.T) {
		postRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Post{ID: 1, AuthorID: &authorID}, nil)
		postRepo.EXPECT().Delete(gomock.Any(), 1).Return(nil)

		err := service.Delete(context.Background(), auth.Principal{UserID: 3}, 1)
		assert.NoError(t, err)
	})

	t.Run("Other client is rejected", func(t *testing.T) {
		postRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Post{ID: 1, AuthorID: &authorID}, nil)

		err := service.Delete(context.Background(), auth.Principal{UserID: 8}, 1)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}
