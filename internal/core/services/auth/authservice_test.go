package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/judgehub-2025.net/internal/config"
	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/static/errs"
)

type fakeUserPort struct {
	byUserName map[string]*domain.Users
	byGoogleID map[string]*domain.Users
	created    []*domain.Users
}

func newFakeUserPort() *fakeUserPort {
	return &fakeUserPort{
		byUserName: map[string]*domain.Users{},
		byGoogleID: map[string]*domain.Users{},
	}
}

func (p *fakeUserPort) Create(ctx context.Context, user *domain.Users) error {
	user.ID = uuid.New()
	p.created = append(p.created, user)
	p.byUserName[user.UserName] = user
	if user.GoogleID != nil {
		p.byGoogleID[*user.GoogleID] = user
	}
	return nil
}

func (p *fakeUserPort) Get(ctx context.Context, id string) (*domain.Users, error) {
	return nil, nil
}

func (p *fakeUserPort) GetByEmail(ctx context.Context, email string) (*domain.Users, error) {
	return nil, nil
}

func (p *fakeUserPort) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	return p.byGoogleID[googleID], nil
}

func (p *fakeUserPort) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	return p.byUserName[userName], nil
}

// fakeJWT treats "hash:<pwd>" as the stored hash of <pwd>.
type fakeJWT struct{}

func (fakeJWT) GenerateTokenHMAC(ctx context.Context, method string, claims map[string]interface{}) (string, error) {
	return "token", nil
}

func (fakeJWT) VerifyTokenHMAC(ctx context.Context, token string, method string) (bool, error) {
	return token == "token", nil
}

func (fakeJWT) DecodeTokenPayload(ctx context.Context, token string) (domain.AuthPayload, error) {
	return domain.AuthPayload{}, nil
}

func (fakeJWT) EncryptPassword(ctx context.Context, password string) (string, error) {
	return "hash:" + password, nil
}

func (fakeJWT) VerifyPassword(ctx context.Context, passwordHash string, pwd string) (bool, error) {
	if passwordHash != "hash:"+pwd {
		return false, errs.InvalidCredentials
	}
	return true, nil
}

func strptr(s string) *string { return &s }

func TestLocalLogin_Success(t *testing.T) {
	users := newFakeUserPort()
	users.byUserName["alice"] = &domain.Users{
		ID:           uuid.New(),
		UserName:     "alice",
		PasswordHash: strptr("hash:s3cret"),
		AuthProvider: string(domain.ProviderLocal),
	}

	svc := NewLocalAuthService(users, fakeJWT{})

	token, err := svc.Login(context.Background(), &domain.Users{
		UserName:     "alice",
		PasswordHash: strptr("s3cret"),
	})
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}

func TestLocalLogin_WrongPassword(t *testing.T) {
	users := newFakeUserPort()
	users.byUserName["alice"] = &domain.Users{
		ID:           uuid.New(),
		UserName:     "alice",
		PasswordHash: strptr("hash:s3cret"),
	}

	svc := NewLocalAuthService(users, fakeJWT{})

	_, err := svc.Login(context.Background(), &domain.Users{
		UserName:     "alice",
		PasswordHash: strptr("wrong"),
	})
	require.ErrorIs(t, err, errs.InvalidCredentials)
}

func TestLocalLogin_UnknownUser(t *testing.T) {
	svc := NewLocalAuthService(newFakeUserPort(), fakeJWT{})

	_, err := svc.Login(context.Background(), &domain.Users{
		UserName:     "nobody",
		PasswordHash: strptr("pwd"),
	})
	require.ErrorIs(t, err, errs.InvalidCredentials)
}

func TestGoogleLogin_CreatesUserOnFirstSight(t *testing.T) {
	users := newFakeUserPort()
	svc := NewGoogleAuthService(users, fakeJWT{}, &config.GGAuthConfig{})

	token, err := svc.Login(context.Background(), &domain.Users{
		GoogleID:     strptr("g-123"),
		Email:        strptr("bob@example.com"),
		AuthProvider: string(domain.ProviderGoogle),
	})
	require.NoError(t, err)
	assert.Equal(t, "token", token)
	require.Len(t, users.created, 1)
	assert.Equal(t, "bob", users.created[0].UserName)
	assert.Nil(t, users.created[0].PasswordHash)
}

func TestGoogleLogin_ExistingUserNotDuplicated(t *testing.T) {
	users := newFakeUserPort()
	users.byGoogleID["g-123"] = &domain.Users{
		ID:           uuid.New(),
		UserName:     "bob",
		AuthProvider: string(domain.ProviderGoogle),
	}
	svc := NewGoogleAuthService(users, fakeJWT{}, &config.GGAuthConfig{})

	_, err := svc.Login(context.Background(), &domain.Users{
		GoogleID:     strptr("g-123"),
		Email:        strptr("bob@example.com"),
		AuthProvider: string(domain.ProviderGoogle),
	})
	require.NoError(t, err)
	assert.Empty(t, users.created)
}

func TestGoogleLogin_DomainRestriction(t *testing.T) {
	svc := NewGoogleAuthService(newFakeUserPort(), fakeJWT{}, &config.GGAuthConfig{
		AllowedDomain: "example.com",
	})

	_, err := svc.Login(context.Background(), &domain.Users{
		GoogleID:     strptr("g-9"),
		Email:        strptr("eve@other.org"),
		AuthProvider: string(domain.ProviderGoogle),
	})
	require.ErrorIs(t, err, errs.EmailDomainDenied)
}
