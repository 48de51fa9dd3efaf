package queryservice

import (
	"context"
	"errors"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, query *domain.Query) (*domain.Query, error)
	FindByID(ctx context.Context, id int) (*domain.Query, error)
	FindAll(ctx context.Context) ([]domain.Query, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Query, error)
	Delete(ctx context.Context, id int) error
	SaveReply(ctx context.Context, reply *domain.QueryResponse) (*domain.QueryResponse, error)
	FindRepliesByQueryID(ctx context.Context, queryID int) ([]domain.QueryResponse, error)
}

type Service struct {
	queryRepo Repo
}

func New(queryRepo Repo) *Service {
	return &Service{queryRepo: queryRepo}
}

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrQueryNotFound    = errors.New("query not found")
)

func (s *Service) Create(ctx context.Context, principal auth.Principal, title, content string) (*domain.Query, error) {
	query := &domain.Query{
		UserID:  principal.UserID,
		Title:   title,
		Content: content,
	}
	saved, err := s.queryRepo.Save(ctx, query)
	if err != nil {
		zap.L().Error("can't create query", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

// List returns every query for staff and the caller's own otherwise.
func (s *Service) List(ctx context.Context, principal auth.Principal) ([]domain.Query, error) {
	if principal.IsStaff() {
		return s.queryRepo.FindAll(ctx)
	}
	return s.queryRepo.FindByUserID(ctx, principal.UserID)
}

func (s *Service) Get(ctx context.Context, principal auth.Principal, id int) (*domain.Query, error) {
	query, err := s.queryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if query == nil {
		return nil, ErrQueryNotFound
	}
	if !principal.IsStaff() && query.UserID != principal.UserID {
		return nil, ErrPermissionDenied
	}
	return query, nil
}

// Delete removes a query; staff or the author.
func (s *Service) Delete(ctx context.Context, principal auth.Principal, id int) error {
	query, err := s.queryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if query == nil {
		return ErrQueryNotFound
	}
	if !principal.IsStaff() && query.UserID != principal.UserID {
		return ErrPermissionDenied
	}
	return s.queryRepo.Delete(ctx, id)
}

// Respond appends a reply to a query. Staff can reply to any query, the
// author to their own.
func (s *Service) Respond(ctx context.Context, principal auth.Principal, queryID int, content string) (*domain.QueryResponse, error) {
	query, err := s.queryRepo.FindByID(ctx, queryID)
	if err != nil {
		return nil, err
	}
	if query == nil {
		return nil, ErrQueryNotFound
	}
	if !principal.IsStaff() && query.UserID != principal.UserID {
		return nil, ErrPermissionDenied
	}
	reply := &domain.QueryResponse{
		QueryID: queryID,
		UserID:  principal.UserID,
		Content: content,
	}
	saved, err := s.queryRepo.SaveReply(ctx, reply)
	if err != nil {
		zap.L().Error("can't save query reply", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (s *Service) Responses(ctx context.Context, principal auth.Principal, queryID int) ([]domain.QueryResponse, error) {
	query, err := s.queryRepo.FindByID(ctx, queryID)
	if err != nil {
		return nil, err
	}
	if query == nil {
		return nil, ErrQueryNotFound
	}
	if !principal.IsStaff() && query.UserID != principal.UserID {
		return nil, ErrPermissionDenied
	}
	return s.queryRepo.FindRepliesByQueryID(ctx, queryID)
}
