package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateRoles(ctx context.Context, id int, isOwner, isProfessional, isSecretary bool) error
	FindProfessionals(ctx context.Context) ([]domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCUIT        = errors.New("cuit must be 11 numeric digits")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPermissionDenied   = errors.New("permission denied")
)

type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	CUIT      string
}

// Register creates a plain client account. Role flags are never granted at
// registration; an owner assigns them afterwards.
func (s *Service) Register(ctx context.Context, reg Registration) (*domain.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, reg.Username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("username already taken", zap.String("username", reg.Username))
		return nil, ErrUsernameTaken
	}
	existing, err = s.userRepo.FindByEmail(ctx, reg.Email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("email already taken", zap.String("email", reg.Email))
		return nil, ErrEmailTaken
	}
	if reg.CUIT != "" && !validate.IsCUIT(reg.CUIT) {
		return nil, ErrInvalidCUIT
	}

	hashedPassword, err := s.hashService.HashPassword(reg.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hashedPassword,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		CUIT:         reg.CUIT,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", reg.Username))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

// GenerateToken issues a JWT carrying the user's id and role flags.
func (s *Service) GenerateToken(user *domain.User) (string, error) {
	principal := auth.Principal{
		UserID:         user.ID,
		IsOwner:        user.IsOwner,
		IsProfessional: user.IsProfessional,
		IsSecretary:    user.IsSecretary,
	}
	token, err := s.jwtService.GenerateJWT(principal, time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ProfileUpdate carries the editable profile fields; nil means keep.
type ProfileUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
	CUIT      *string
	Password  *string
}

// UpdateProfile validates and assigns each changed field explicitly; users
// can only edit themselves.
func (s *Service) UpdateProfile(ctx context.Context, userID int, upd ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if upd.Email != nil && *upd.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, *upd.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		user.Email = *upd.Email
	}
	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.CUIT != nil {
		if *upd.CUIT != "" && !validate.IsCUIT(*upd.CUIT) {
			return nil, ErrInvalidCUIT
		}
		user.CUIT = *upd.CUIT
	}
	if upd.Password != nil {
		hashed, err := s.hashService.HashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		zap.L().Error("can't update user: ", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// SetRoles grants or revokes role flags; owner only.
func (s *Service) SetRoles(ctx context.Context, principal auth.Principal, targetID int, isOwner, isProfessional, isSecretary bool) (*domain.User, error) {
	if !principal.IsOwner {
		return nil, ErrPermissionDenied
	}
	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := s.userRepo.UpdateRoles(ctx, targetID, isOwner, isProfessional, isSecretary); err != nil {
		zap.L().Error("can't update roles: ", zap.Error(err))
		return nil, err
	}
	user.IsOwner = isOwner
	user.IsProfessional = isProfessional
	user.IsSecretary = isSecretary
	return user, nil
}

func (s *Service) ListProfessionals(ctx context.Context) ([]domain.User, error) {
	professionals, err := s.userRepo.FindProfessionals(ctx)
	if err != nil {
		zap.L().Error("can't list professionals", zap.Error(err))
		return nil, err
	}
	return professionals, nil
}
