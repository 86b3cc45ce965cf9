package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weddingconsole/database/repository"
	"weddingconsole/models"
	"weddingconsole/services/workflow"
	"weddingconsole/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// account is the part of a provider or hall manager the login flow needs.
type account struct {
	id           string
	status       models.Status
	passwordHash string
}

func (s *DefaultAuthService) ttl() time.Duration {
	if s.SessionTTL <= 0 {
		return 24 * time.Hour
	}
	return s.SessionTTL
}

// maxAge never falls below the idle TTL.
func (s *DefaultAuthService) maxAge() time.Duration {
	if s.MaxSessionAge < s.ttl() {
		if s.MaxSessionAge <= 0 {
			return 7 * 24 * time.Hour
		}
		return s.ttl()
	}
	return s.MaxSessionAge
}

// Register creates a pending account and signs it in.
func (s *DefaultAuthService) Register(ctx context.Context, role models.Role, req models.RegistrationRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.lookup(ctx, role, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	id := uuid.New().String()
	switch role {
	case models.RoleServiceProvider:
		provider := &models.ServiceProvider{
			ID:           id,
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			Phone:        strings.TrimSpace(req.Phone),
			Address:      strings.TrimSpace(req.Address),
			Services:     models.NormalizeServices(req.Services),
			Status:       models.StatusPending,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.Providers.Create(ctx, provider); err != nil {
			return nil, createError("create service provider", err)
		}
	case models.RoleHallManager:
		capacity, err := s.Workflow.Numbers.Int("hallCapacity", req.HallCapacity)
		if err != nil {
			return nil, err
		}
		price, err := s.Workflow.Numbers.Decimal("hallPrice", req.HallPrice)
		if err != nil {
			return nil, err
		}
		manager := &models.HallManager{
			ID:              id,
			Name:            strings.TrimSpace(req.Name),
			Email:           email,
			HallName:        strings.TrimSpace(req.HallName),
			HallAddress:     strings.TrimSpace(req.HallAddress),
			HallDescription: strings.TrimSpace(req.HallDescription),
			HallCapacity:    capacity,
			HallPrice:       price,
			HallPhone:       strings.TrimSpace(req.HallPhone),
			Images:          []string{},
			Status:          models.StatusPending,
			PasswordHash:    string(hash),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.Halls.Create(ctx, manager); err != nil {
			return nil, createError("create hall manager", err)
		}
	default:
		return nil, ErrUnsupportedRole
	}

	s.Logger.Info("Account registered", zap.String("role", string(role)), zap.String("id", id))
	return s.issue(ctx, role, id, models.StatusPending)
}

// createError reports a unique-email race lost at insert time as ErrEmailTaken.
func createError(op string, err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrEmailTaken
	}
	return workflow.Collaborator(op, err)
}

// Login checks the password and opens a session. Pending accounts may sign in
// and see their status; rejected ones may not.
func (s *DefaultAuthService) Login(ctx context.Context, role models.Role, email, password string) (*models.AuthResponse, error) {
	acc, err := s.lookup(ctx, role, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.passwordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if acc.status == models.StatusRejected {
		return nil, ErrAccountRejected
	}
	return s.issue(ctx, role, acc.id, acc.status)
}

// Logout removes the session behind token.
func (s *DefaultAuthService) Logout(ctx context.Context, token string) error {
	if err := s.Sessions.Delete(ctx, utils.HashToken(token)); err != nil {
		return workflow.Collaborator("delete session", err)
	}
	return nil
}

func (s *DefaultAuthService) Authenticate(ctx context.Context, token string) (*utils.Session, error) {
	subject, role, err := utils.ExtractClaims(token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	session, err := s.Sessions.Get(ctx, utils.HashToken(token), s.ttl())
	if err != nil {
		return nil, workflow.Collaborator("get session", err)
	}
	if session == nil || session.AccountID != subject || session.Role != role {
		return nil, ErrInvalidSession
	}

	status, err := s.accountStatus(ctx, models.Role(role), subject)
	if err != nil {
		return nil, err
	}
	if status == "" || status == models.StatusRejected {
		if derr := s.Sessions.Delete(ctx, utils.HashToken(token)); derr != nil {
			s.Logger.Warn("Failed to revoke session", zap.String("accountId", subject), zap.Error(derr))
		}
		if status == "" {
			return nil, ErrInvalidSession
		}
		return nil, ErrAccountRejected
	}
	return session, nil
}

// accountStatus returns the current status of the account, or "" if it no longer exists.
func (s *DefaultAuthService) accountStatus(ctx context.Context, role models.Role, id string) (models.Status, error) {
	switch role {
	case models.RoleServiceProvider:
		p, err := s.Providers.GetByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil
		}
		if err != nil {
			return "", workflow.Collaborator("get service provider", err)
		}
		return p.Status, nil
	case models.RoleHallManager:
		m, err := s.Halls.GetByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil
		}
		if err != nil {
			return "", workflow.Collaborator("get hall manager", err)
		}
		return m.Status, nil
	}
	return "", ErrInvalidSession
}

func (s *DefaultAuthService) issue(ctx context.Context, role models.Role, id string, status models.Status) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(id, string(role), s.maxAge())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	session := utils.Session{AccountID: id, Role: string(role), CreatedAt: time.Now().UTC()}
	if err := s.Sessions.Save(ctx, utils.HashToken(token), session, s.ttl()); err != nil {
		return nil, workflow.Collaborator("save session", err)
	}
	return &models.AuthResponse{ID: id, Role: role, Token: token, Status: status}, nil
}

func (s *DefaultAuthService) lookup(ctx context.Context, role models.Role, email string) (*account, error) {
	switch role {
	case models.RoleServiceProvider:
		p, err := s.Providers.GetByEmail(ctx, email)
		if err != nil {
			return nil, workflow.Collaborator("get service provider", err)
		}
		if p == nil {
			return nil, nil
		}
		return &account{id: p.ID, status: p.Status, passwordHash: p.PasswordHash}, nil
	case models.RoleHallManager:
		m, err := s.Halls.GetByEmail(ctx, email)
		if err != nil {
			return nil, workflow.Collaborator("get hall manager", err)
		}
		if m == nil {
			return nil, nil
		}
		return &account{id: m.ID, status: m.Status, passwordHash: m.PasswordHash}, nil
	}
	return nil, ErrUnsupportedRole
}
