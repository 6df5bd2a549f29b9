package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecomarket/catalog-api/internal/api/metrics"
	"github.com/ecomarket/catalog-api/internal/core/auth"
	"github.com/ecomarket/catalog-api/internal/core/domain"
	"github.com/ecomarket/catalog-api/internal/core/ports"
)

// AuthService implements signup and the credential-for-token exchange.
type AuthService struct {
	repo  ports.UserRepository
	codec *auth.Codec
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *auth.Codec, audit ports.AuditSink, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, audit: audit, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" || in.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      in.IsAdmin,
		IsSupplier:   in.IsSupplier,
		IsCustomer:   in.IsCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit.Enqueue(ports.AuditEventInput{
		Actor:     created.Username,
		Action:    "user.register",
		Timestamp: now,
	})
	s.log.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates username/password and issues a session token with a
// fixed TTL. The token embeds the role flags as of this moment; they are
// not refreshed until the token is reissued.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			auth.BurnCompare(password)
			s.loginFailed(username)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	// Inactive accounts fail before the password is even checked.
	if !user.IsActive {
		s.loginFailed(username)
		return "", domain.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.loginFailed(username)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Encode(user, time.Now().UTC())
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.audit.Enqueue(ports.AuditEventInput{
		Actor:     user.Username,
		Action:    "auth.login",
		Timestamp: time.Now().UTC(),
	})
	return token, nil
}

func (s *AuthService) loginFailed(username string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	// Log the attempted username only; never the reason the attempt failed.
	s.log.Warn().Str("username", username).Msg("login rejected")
}
