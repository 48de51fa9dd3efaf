package postservice

import (
	"context"
	"errors"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id int) (*domain.Post, error)
	FindAll(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	postRepo Repo
	userRepo UserRepo
}

func New(postRepo Repo, userRepo UserRepo) *Service {
	return &Service{postRepo: postRepo, userRepo: userRepo}
}

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrPostNotFound     = errors.New("post not found")
)

// Create publishes a post. A non-empty alias makes the post anonymous: the
// author is dropped and the alias shown instead. Otherwise the post is
// attributed and signed with the author's first name.
func (s *Service) Create(ctx context.Context, principal auth.Principal, title, content, alias string) (*domain.Post, error) {
	post := &domain.Post{
		Title:   title,
		Content: content,
	}
	if alias != "" {
		post.Alias = alias
	} else {
		user, err := s.userRepo.FindByID(ctx, principal.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrPermissionDenied
		}
		authorID := principal.UserID
		post.AuthorID = &authorID
		post.Alias = user.FirstName
	}

	saved, err := s.postRepo.Save(ctx, post)
	if err != nil {
		zap.L().Error("can't create post", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

// List returns posts newest first.
func (s *Service) List(ctx context.Context) ([]domain.Post, error) {
	return s.postRepo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Update edits a post; the author or staff.
func (s *Service) Update(ctx context.Context, principal auth.Principal, id int, title, content string) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !s.canEdit(principal, post) {
		return nil, ErrPermissionDenied
	}
	post.Title = title
	post.Content = content
	if err := s.postRepo.Update(ctx, post); err != nil {
		zap.L().Error("can't update post", zap.Error(err))
		return nil, err
	}
	return post, nil
}

func (s *Service) Delete(ctx context.Context, principal auth.Principal, id int) error {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !s.canEdit(principal, post) {
		return ErrPermissionDenied
	}
	return s.postRepo.Delete(ctx, id)
}

func (s *Service) canEdit(principal auth.Principal, post *domain.Post) bool {
	if principal.IsStaff() {
		return true
	}
	return post.AuthorID != nil && *post.AuthorID == principal.UserID
}
