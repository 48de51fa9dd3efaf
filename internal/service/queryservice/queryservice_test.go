package queryservice

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
	queryRepo := NewMockRepo(ctrl)
	service := New(queryRepo)
	defer ctrl.Finish()
	return service, queryRepo
}

func TestCreate(t *testing.T) {
	service, queryRepo := NewMock(t)

	queryRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, query *domain.Query) (*domain.Query, error) {
		query.ID = 1
		return query, nil
	})

	query, err := service.Create(context.Background(), auth.Principal{UserID: 3}, "Horarios", "Atienden los sabados?")
	assert.NoError(t, err)
	assert.Equal(t, 3, query.UserID)
	assert.Equal(t, "Horarios", query.Title)
}

func TestList(t *testing.T) {
	service, queryRepo := NewMock(t)

	t.Run("Staff see every query", func(t *testing.T) {
		queryRepo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		_, err := service.List(context.Background(), auth.Principal{UserID: 2, IsSecretary: true})
		assert.NoError(t, err)
	})

	t.Run("Clients see their own queries", func(t *testing.T) {
		queryRepo.EXPECT().FindByUserID(gomock.Any(), 3).Return(nil, nil)

		_, err := service.List(context.Background(), auth.Principal{UserID: 3})
		assert.NoError(t, err)
	})
}

func TestGet(t *testing.T) {
	service, queryRepo := NewMock(t)

	tests := []struct {
		name          string
		principal     auth.Principal
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Author reads own query",
			principal: auth.Principal{UserID: 3},
			prepareMock: func() {
				queryRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Query{ID: 1, UserID: 3}, nil)
			},
		},
		{
			name:      "Other client is rejected",
			principal: auth.Principal{UserID: 8},
			prepareMock: func() {
				queryRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Query{ID: 1, UserID: 3}, nil)
			},
			expectedError: ErrPermissionDenied,
		},
		{
			name:      "Unknown query",
			principal: auth.Principal{UserID: 3},
			prepareMock: func() {
				queryRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrQueryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			query, err := service.Get(context.Background(), tt.principal, 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, query.ID)
		})
	}
}

func TestRespond(t *testing.T) {
	service, queryRepo := NewMock(t)

	t.Run("Secretary replies to a client query", func(t *testing.T) {
		queryRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Query{ID: 1, UserID: 3}, nil)
		queryRepo.EXPECT().SaveReply(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, reply *domain.QueryResponse) (*domain.QueryResponse, error) {
			reply.ID = 1
			return reply, nil
		})

		reply, err := service.Respond(context.Background(), auth.Principal{UserID: 2, IsSecretary: true}, 1, "Si, de 9 a 13")
		assert.NoError(t, err)
		assert.Equal(t, 1, reply.QueryID)
		assert.Equal(t, 2, reply.UserID)
	})

	t.Run("Other client cannot reply", func(t *testing.T) {
		queryRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Query{ID: 1, UserID: 3}, nil)

		_, err := service.Respond(context.Background(), auth.Principal{UserID: 8}, 1, "hola")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestResponses(t *testing.T) {
	service, queryRepo := NewMock(t)

	queryRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Query{ID: 1, UserID: 3}, nil)
	queryRepo.EXPECT().FindRepliesByQueryID(gomock.Any(), 1).Return([]domain.QueryResponse{{ID: 1, QueryID: 1}}, nil)

	replies, err := service.Responses(context.Background(), auth.Principal{UserID: 3}, 1)
	assert.NoError(t, err)
	assert.Len(t, replies, 1)
}
