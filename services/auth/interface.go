package auth

import (
	"context"
	"errors"
	"time"

	hallRepo "weddingconsole/database/repository/hall"
	providerRepo "weddingconsole/database/repository/provider"
	"weddingconsole/models"
	"weddingconsole/services/workflow"
	"weddingconsole/utils"

	"go.uber.org/zap"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountRejected    = errors.New("account has been rejected")
	ErrUnsupportedRole    = errors.New("role cannot register or log in here")
	ErrInvalidSession     = errors.New("session is invalid or expired")
)

// SessionStore persists login sessions keyed by token hash.
type SessionStore interface {
	Save(ctx context.Context, tokenHash string, session utils.Session, ttl time.Duration) error
	Get(ctx context.Context, tokenHash string, ttl time.Duration) (*utils.Session, error)
	Delete(ctx context.Context, tokenHash string) error
}

// AuthService registers and signs in service providers and hall managers.
type AuthService interface {
	Register(ctx context.Context, role models.Role, req models.RegistrationRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, role models.Role, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a bearer token to its session, refreshing the idle TTL.
	// Sessions of accounts rejected or deleted since sign-in are revoked.
	Authenticate(ctx context.Context, token string) (*utils.Session, error)
}

// DefaultAuthService is the production implementation.
//
// SessionTTL is the idle timeout, slid forward on every authenticated request.
// MaxSessionAge is the absolute lifetime carried in the token's exp claim.
type DefaultAuthService struct {
	Providers     providerRepo.ProviderRepository
	Halls         hallRepo.HallManagerRepository
	Sessions      SessionStore
	Workflow      *workflow.Workflow
	Logger        *zap.Logger
	SessionTTL    time.Duration
	MaxSessionAge time.Duration
}
