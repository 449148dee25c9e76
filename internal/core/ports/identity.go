package ports

import (
	"context"

	"github.com/valo-rant/community-api/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

// IdentityService validates credentials and issues client-held sessions.
// There is no server-side session state.
type IdentityService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Session, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}

// PasswordCodec transforms credentials for storage. The default codec is a
// reversible obfuscation, not a hash: Encode is deterministic and Decode
// recovers the original input. Replace with a salted-hash implementation for
// any production deployment; the interface exists so nothing else changes.
type PasswordCodec interface {
	Encode(plain string) string
	Decode(encoded string) (string, error)
}
