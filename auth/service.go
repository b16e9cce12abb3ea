package auth

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/bloglist-go/apperror"
)

const minCredentialLength = 3

// Service orchestrates registration and login. Registration validates input
// before any hashing or storage access; login answers every credential
// failure with the same generic error.
type Service struct {
	users  UserRepository
	tokens *TokenAuthority
	log    *zap.Logger
}

// NewService constructs the credential verifier.
func NewService(users UserRepository, tokens *TokenAuthority, log *zap.Logger) *Service {
	return &Service{users: users, tokens: tokens, log: log}
}

// Register validates the request, hashes the password, and persists a new
// user. Validation runs before the store is touched, so a failed attempt
// leaves it unchanged. The returned user carries no hash.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if len(req.Username) < minCredentialLength {
		return nil, apperror.NewValidationError(
			"username must be at least 3 characters long", nil)
	}
	if len(req.Password) < minCredentialLength {
		return nil, apperror.NewValidationError(
			"password must be long enough: at least 3 characters", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if !apperror.IsDuplicateKey(err) {
			s.log.Error("user insert failed", zap.String("username", req.Username), zap.Error(err))
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies the credentials and mints a bearer token. A missing user
// and a wrong password produce the same error so usernames cannot be
// enumerated.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthenticationError("invalid username or password", nil)
		}
		s.log.Error("user lookup failed", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthenticationError("invalid username or password", nil)
	}

	token, err := s.tokens.Sign(user.ID, user.Username)
	if err != nil {
		s.log.Error("token signing failed", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	return &TokenResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}
