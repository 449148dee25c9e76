package service

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

// The one administrator identity. It lives outside the mutable user
// collection so admin login works regardless of what users register.
const (
	adminUsername = "Admin"
	adminEmail    = "admin@gmail.com"
	adminPassword = "access"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IdentityService implements registration and login against the user store.
type IdentityService struct {
	users       ports.UserStore
	codec       ports.PasswordCodec
	adminSecret string
	logger      zerolog.Logger
}

func NewIdentityService(users ports.UserStore, codec ports.PasswordCodec, logger zerolog.Logger) *IdentityService {
	return &IdentityService{
		users:       users,
		codec:       codec,
		adminSecret: codec.Encode(adminPassword),
		logger:      logger,
	}
}

// Register validates the form and creates the account. Checks run in a fixed
// order; the first failure is reported and nothing is stored.
func (s *IdentityService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Session, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" || input.Confirm == "" {
		return nil, domain.E(domain.ErrValidation, "Please fill in all fields")
	}
	if utf8.RuneCountInString(input.Username) < 3 {
		return nil, domain.E(domain.ErrValidation, "Username must be at least 3 characters long")
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, domain.E(domain.ErrValidation, "Please enter a valid email address")
	}
	if input.Password != input.Confirm {
		return nil, domain.E(domain.ErrValidation, "Passwords do not match")
	}
	if utf8.RuneCountInString(input.Password) < 6 {
		return nil, domain.E(domain.ErrValidation, "Password must be at least 6 characters long")
	}
	if s.users.Taken(ctx, input.Username, input.Email) {
		return nil, domain.E(domain.ErrConflict, "This email or username is already registered")
	}

	user := domain.User{
		Username: input.Username,
		Email:    input.Email,
		Password: s.codec.Encode(input.Password),
		IsAdmin:  false,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", input.Username).Msg("user registered")

	return &domain.Session{Username: input.Username, Email: input.Email, IsAdmin: false}, nil
}

// Login checks the hardcoded admin identity first, then scans registered
// users by email and decoded password.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.E(domain.ErrValidation, "Please fill in all fields")
	}

	if email == adminEmail {
		if s.codec.Encode(password) == s.adminSecret {
			s.logger.Info().Str("username", adminUsername).Msg("admin login")
			return &domain.Session{Username: adminUsername, Email: adminEmail, IsAdmin: true}, nil
		}
		return nil, domain.E(domain.ErrInvalidCredentials, "Invalid email or password")
	}

	if user, ok := s.users.FindByEmail(ctx, email); ok {
		stored, err := s.codec.Decode(user.Password)
		if err == nil && stored == password {
			s.logger.Info().Str("username", user.Username).Msg("user login")
			return &domain.Session{Username: user.Username, Email: user.Email, IsAdmin: user.IsAdmin}, nil
		}
	}

	return nil, domain.E(domain.ErrInvalidCredentials, "Invalid email or password")
}
