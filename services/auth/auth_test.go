package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"weddingconsole/config"
	"weddingconsole/database/repository"
	"weddingconsole/database/repository/mocks"
	"weddingconsole/models"
	"weddingconsole/services/workflow"
	"weddingconsole/utils"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]utils.Session
}

func (m *memorySessions) Save(_ context.Context, hash string, s utils.Session, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[hash] = s
	return nil
}

func (m *memorySessions) Get(_ context.Context, hash string, _ time.Duration) (*utils.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[hash]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memorySessions) Delete(_ context.Context, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, hash)
	return nil
}

func newService(t *testing.T) (*DefaultAuthService, *mocks.MockProviderRepository, *mocks.MockHallManagerRepository, *memorySessions) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"
	providers := mocks.NewMockProviderRepository(t)
	halls := mocks.NewMockHallManagerRepository(t)
	sessions := &memorySessions{sessions: map[string]utils.Session{}}
	svc := &DefaultAuthService{
		Providers:  providers,
		Halls:      halls,
		Sessions:   sessions,
		Workflow:   workflow.New(false),
		Logger:     zap.NewNop(),
		SessionTTL: time.Hour,
	}
	return svc, providers, halls, sessions
}

func TestRegister_ServiceProvider(t *testing.T) {
	svc, providers, _, sessions := newService(t)
	providers.On("GetByEmail", mock.Anything, "lens@example.com").Return(nil, nil)
	providers.On("Create", mock.Anything, mock.MatchedBy(func(p *models.ServiceProvider) bool {
		return p.Status == models.StatusPending &&
			p.Email == "lens@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("s3cret-pass")) == nil
	})).Return(nil)

	resp, err := svc.Register(context.Background(), models.RoleServiceProvider, models.RegistrationRequest{
		Name:     "Lens",
		Email:    " Lens@Example.com ",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, models.RoleServiceProvider, resp.Role)
	assert.NotEmpty(t, resp.Token)
	assert.Len(t, sessions.sessions, 1)
}

func TestRegister_HallManagerCoercesNumbers(t *testing.T) {
	svc, _, halls, _ := newService(t)
	halls.On("GetByEmail", mock.Anything, "rose@example.com").Return(nil, nil)
	halls.On("Create", mock.Anything, mock.MatchedBy(func(m *models.HallManager) bool {
		return m.HallCapacity == 250 && m.HallPrice.IsZero() && m.Images != nil
	})).Return(nil)

	_, err := svc.Register(context.Background(), models.RoleHallManager, models.RegistrationRequest{
		Name:         "Rose",
		Email:        "rose@example.com",
		Password:     "s3cret-pass",
		HallCapacity: "250",
		HallPrice:    "call us",
	})
	require.NoError(t, err)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, providers, _, _ := newService(t)
	providers.On("GetByEmail", mock.Anything, "lens@example.com").Return(&models.ServiceProvider{ID: "p1"}, nil)

	_, err := svc.Register(context.Background(), models.RoleServiceProvider, models.RegistrationRequest{
		Email:    "lens@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	svc, _, _, _ := newService(t)
	_, err := svc.Register(context.Background(), models.RoleAdmin, models.RegistrationRequest{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrUnsupportedRole)
}

func TestLoginAuthenticateLogout(t *testing.T) {
	svc, providers, _, _ := newService(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	providers.On("GetByEmail", mock.Anything, "lens@example.com").Return(&models.ServiceProvider{
		ID:           "p1",
		Status:       models.StatusApproved,
		PasswordHash: string(hash),
	}, nil)

	providers.On("GetByID", mock.Anything, "p1").Return(&models.ServiceProvider{ID: "p1", Status: models.StatusApproved}, nil)

	_, err = svc.Login(context.Background(), models.RoleServiceProvider, "lens@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := svc.Login(context.Background(), models.RoleServiceProvider, "lens@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "p1", resp.ID)

	session, err := svc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "p1", session.AccountID)
	assert.Equal(t, string(models.RoleServiceProvider), session.Role)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))
	_, err = svc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestLogin_UnknownAndRejected(t *testing.T) {
	svc, _, halls, _ := newService(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	halls.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
	halls.On("GetByEmail", mock.Anything, "rose@example.com").Return(&models.HallManager{
		ID:           "h1",
		Status:       models.StatusRejected,
		PasswordHash: string(hash),
	}, nil)

	_, err = svc.Login(context.Background(), models.RoleHallManager, "nobody@example.com", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), models.RoleHallManager, "rose@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrAccountRejected)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	svc, _, _, _ := newService(t)
	_, err := svc.Authenticate(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestAuthenticate_RevokesRejectedAccount(t *testing.T) {
	svc, _, halls, sessions := newService(t)
	halls.On("GetByEmail", mock.Anything, "rose@example.com").Return(nil, nil)
	halls.On("Create", mock.Anything, mock.Anything).Return(nil)
	resp, err := svc.Register(context.Background(), models.RoleHallManager, models.RegistrationRequest{
		Email:    "rose@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	// The admin rejects the account after it signed in.
	halls.On("GetByID", mock.Anything, resp.ID).Return(&models.HallManager{ID: resp.ID, Status: models.StatusRejected}, nil)

	_, err = svc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrAccountRejected)
	assert.Empty(t, sessions.sessions)
}

func TestAuthenticate_DeletedAccount(t *testing.T) {
	svc, providers, _, sessions := newService(t)
	providers.On("GetByEmail", mock.Anything, "lens@example.com").Return(nil, nil)
	providers.On("Create", mock.Anything, mock.Anything).Return(nil)
	resp, err := svc.Register(context.Background(), models.RoleServiceProvider, models.RegistrationRequest{
		Email:    "lens@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	providers.On("GetByID", mock.Anything, resp.ID).Return(nil, fmt.Errorf("serviceProviders %s: %w", resp.ID, repository.ErrNotFound))

	_, err = svc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.Empty(t, sessions.sessions)
}

func TestRegister_DuplicateInsertIsEmailTaken(t *testing.T) {
	svc, providers, _, _ := newService(t)
	providers.On("GetByEmail", mock.Anything, "lens@example.com").Return(nil, nil)
	providers.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("failed to insert into serviceProviders: %w", repository.ErrDuplicate))

	_, err := svc.Register(context.Background(), models.RoleServiceProvider, models.RegistrationRequest{
		Email:    "lens@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestIssue_TokenOutlivesIdleTTL(t *testing.T) {
	svc, providers, _, _ := newService(t)
	svc.MaxSessionAge = 48 * time.Hour
	providers.On("GetByEmail", mock.Anything, "lens@example.com").Return(nil, nil)
	providers.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Register(context.Background(), models.RoleServiceProvider, models.RegistrationRequest{
		Email:    "lens@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	token, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), exp, time.Minute)
}
