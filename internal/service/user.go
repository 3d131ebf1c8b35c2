package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/shop/internal/hash"
	"github.com/Skotchmaster/shop/internal/logging"
	"github.com/Skotchmaster/shop/internal/models"
	"github.com/Skotchmaster/shop/internal/repo"
	"github.com/Skotchmaster/shop/internal/tokens"
	"github.com/Skotchmaster/shop/internal/transport"
)

type UserService struct {
	Repo   *repo.GormRepo
	Tokens *tokens.Issuer
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	items, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	return items, nil
}

// Register always creates an employee, whatever role the caller sent.
func (s *UserService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With().Str("svc", "user.register").Logger()

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	pwHash, err := hashPassword(req.Password)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return nil, err
		}
		l.Error().Err(err).Str("reason", "cannot hash the password").Msg("register_error")
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: pwHash,
		Role:         models.RoleEmployee,
		Version:      1,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, storeErr("register", err)
	}
	return user, nil
}

type AuthResult struct {
	User  *models.User
	Token string
	// ExpiresAt is when Token stops being accepted.
	ExpiresAt time.Time
}

// Authenticate checks the credentials and issues a token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, req transport.LoginRequest) (*AuthResult, error) {
	l := logging.FromContext(ctx).With().Str("svc", "user.authenticate").Str("username", req.Username).Logger()

	user, err := s.Repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeErr("authenticate", err)
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		l.Error().Err(err).Msg("issue_token_failed")
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	return &AuthResult{User: user, Token: token, ExpiresAt: exp}, nil
}

// Update replaces the user wholesale. A payload id that differs from id is
// reported as not found before the payload is validated.
func (s *UserService) Update(ctx context.Context, id uint, req transport.UserRequest) (*models.User, error) {
	if req.ID != id {
		return nil, fmt.Errorf("update user %d: payload id %d: %w", id, req.ID, ErrNotFound)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	pwHash, err := hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	user := &models.User{
		ID:           id,
		Username:     req.Username,
		PasswordHash: pwHash,
		Role:         req.Role,
		Version:      req.Version,
	}
	if err := s.Repo.ReplaceUser(ctx, user); err != nil {
		return nil, storeErr("update user", err)
	}

	updated, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, storeErr("update user", err)
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repo.GetUser(ctx, id); err != nil {
		return storeErr("delete user", err)
	}
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		return storeErr("delete user", err)
	}
	return nil
}

// EnsureManager seeds a manager account. Registration only ever creates
// employees, so without it no manager could exist. An existing user with
// the same name is left untouched.
func (s *UserService) EnsureManager(ctx context.Context, username, password string) (bool, error) {
	if err := validateStruct(transport.RegisterRequest{Username: username, Password: password}); err != nil {
		return false, err
	}

	pwHash, err := hashPassword(password)
	if err != nil {
		return false, fmt.Errorf("ensure manager: %w", err)
	}

	created, err := s.Repo.CreateUserIfNotExists(ctx, &models.User{
		Username:     username,
		PasswordHash: pwHash,
		Role:         models.RoleManager,
		Version:      1,
	})
	if err != nil {
		return false, storeErr("ensure manager", err)
	}
	return created, nil
}

// hashPassword reports bcrypt's byte limit as a validation failure on the
// password field.
func hashPassword(password string) (string, error) {
	pwHash, err := hash.HashPassword(password)
	if errors.Is(err, hash.ErrPasswordTooLong) {
		return "", &ValidationError{Fields: map[string]string{
			"password": "max_bytes=" + strconv.Itoa(hash.MaxPasswordBytes),
		}}
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return pwHash, nil
}
