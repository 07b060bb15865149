package services

import (
	"agencia_backend/internal/auth"
	"agencia_backend/internal/logger"
	"agencia_backend/internal/models"
	"agencia_backend/internal/repositories"
	"agencia_backend/internal/services/dto"
	"agencia_backend/internal/slug"
	"agencia_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	CurrentUser(userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	tokens      *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
	}
}

// Register creates the user and, for the model role, a PENDING profile with a
// slug derived from the artistic name. Admins are never self-registered; they
// come from the seed or from another admin.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Role != models.UserRoleVisitor && req.Role != models.UserRoleModel {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Role == models.UserRoleModel {
		if err := s.createModelProfile(user, req); err != nil {
			// roll the user back so a failed registration leaves nothing behind
			if delErr := s.userRepo.Delete(user.ID); delErr != nil {
				logger.Error("failed to roll back user after profile creation failure",
					"user_id", user.ID, "error", delErr)
			}
			return nil, apperrors.InternalError(err)
		}
	}

	return s.buildAuthResponse(user.ID)
}

func (s *AuthServiceImpl) createModelProfile(user *models.User, req *dto.RegisterRequest) error {
	artisticName := req.ArtisticName
	if artisticName == "" {
		artisticName = req.Name
	}

	profile := &models.Profile{
		UserID:       user.ID,
		ArtisticName: artisticName,
		Status:       models.StatusPending,
	}
	// assign the ID up front; the slug collision suffix is derived from it
	profile.ID = uuid.NewString()

	candidate := slug.Make(artisticName)
	taken, err := s.profileRepo.SlugTaken(candidate, profile.ID)
	if err != nil {
		return err
	}
	if taken {
		candidate = slug.WithSuffix(candidate, profile.ID)
	}
	profile.Slug = candidate

	return s.profileRepo.Create(profile)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user.ID)
}

// CurrentUser resolves the session's user with its profile; any failure
// (deleted user included) reads as an invalid session.
func (s *AuthServiceImpl) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) buildAuthResponse(userID string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}
