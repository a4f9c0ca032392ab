package services

import (
	"context"
	"strings"

	"github.com/blogworks/blogs-backend/errs"
	"github.com/blogworks/blogs-backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultRoleName is the role every self-registered account receives.
const defaultRoleName = "User"

type UserStore interface {
	FindByCredentials(ctx context.Context, userName, password string) (*models.User, error)
	ExistsByUserName(ctx context.Context, userName string) (bool, error)
	Add(ctx context.Context, user *models.User) error
}

type RoleStore interface {
	FindByName(ctx context.Context, name string) (*models.Role, error)
}

// AuthService handles login and registration. Credentials are compared as
// stored; see the User model note on plaintext passwords.
type AuthService struct {
	users  UserStore
	roles  RoleStore
	tokens TokenConfig
	logger zerolog.Logger
}

func NewAuthService(users UserStore, roles RoleStore, tokens TokenConfig) AuthService {
	logger := log.With().Str("serviceName", "authService").Logger()
	return AuthService{users: users, roles: roles, tokens: tokens, logger: logger}
}

// Login checks the credentials and, for an active account, issues a signed
// bearer token. The token travels in the Message field of the response.
// The failure message never reveals which credential was wrong.
func (s AuthService) Login(ctx context.Context, req models.LoginRequest) (models.CommandResponse, error) {
	user, err := s.users.FindByCredentials(ctx, req.UserName, req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("credential lookup failed")
		return models.CommandResponse{}, err
	}
	if user == nil {
		return models.Error("Invalid user name or password!"), nil
	}
	if !user.IsActive {
		return models.Error("User is not active!"), nil
	}

	token, err := s.tokens.Create(user)
	if err != nil {
		s.logger.Error().Err(err).Msg("token signing failed")
		return models.CommandResponse{}, err
	}

	return models.CommandResponse{IsSuccessful: true, Message: token, Id: user.ID}, nil
}

// Register creates an active account under the default role. The
// password/confirmation comparison happens at the validation layer and is
// not repeated here.
func (s AuthService) Register(ctx context.Context, req models.RegisterRequest) (models.CommandResponse, error) {
	userName := strings.TrimSpace(req.UserName)

	exists, err := s.users.ExistsByUserName(ctx, userName)
	if err != nil {
		s.logger.Error().Err(err).Msg("user name check failed")
		return models.CommandResponse{}, err
	}
	if exists {
		return models.Error("User name already exists!"), nil
	}

	role, err := s.roles.FindByName(ctx, defaultRoleName)
	if err != nil {
		s.logger.Error().Err(err).Msg("role lookup failed")
		return models.CommandResponse{}, err
	}
	if role == nil {
		return models.Error("Default 'User' role not found! Seed the database first."), nil
	}

	user := &models.User{
		Guid:     uuid.NewString(),
		UserName: userName,
		Password: req.Password,
		IsActive: true,
		RoleID:   role.ID,
	}
	if err := s.users.Add(ctx, user); err != nil {
		if errs.IsDuplicateKey(err) {
			return models.Error("User name already exists!"), nil
		}
		s.logger.Error().Err(err).Msg("user create failed")
		return models.CommandResponse{}, err
	}

	return models.Success("User registered successfully.", user.ID), nil
}
