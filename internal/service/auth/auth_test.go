package auth

import (
	"context"
	"testing"
	"time"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/model"
	"crypto_casino/internal/repository/mem_repo"
	"crypto_casino/pkg/token"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jwtCfg struct{}

func (jwtCfg) AccessTokenSecretKey() []byte       { return []byte("test-secret") }
func (jwtCfg) AccessTokenDuration() time.Duration { return time.Minute }
func (jwtCfg) RefreshTokenDuration() time.Duration {
	return time.Hour
}

type walletCfg struct{}

func (walletCfg) MoneyAsset() string    { return "usd" }
func (walletCfg) StartBalance() float64 { return 1000 }

// userRepoFake и authRepoFake - in-memory хранилища под тесты
type userRepoFake struct {
	nextID int
	byLogin map[string]*model.User
}

func newUserRepoFake() *userRepoFake {
	return &userRepoFake{nextID: 1, byLogin: make(map[string]*model.User)}
}

func (r *userRepoFake) CreateUser(_ context.Context, user *model.User) (int, error) {
	if _, ok := r.byLogin[user.Login]; ok {
		return 0, gameerr.Validationf("login %s already taken", user.Login)
	}
	u := *user
	u.ID = r.nextID
	r.nextID++
	r.byLogin[u.Login] = &u
	return u.ID, nil
}

func (r *userRepoFake) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	u, ok := r.byLogin[login]
	if !ok {
		return nil, gameerr.NotFoundf("user %s not found", login)
	}
	return u, nil
}

type authRepoFake struct {
	sessions map[string]*model.Session
	users    *userRepoFake
}

func newAuthRepoFake(users *userRepoFake) *authRepoFake {
	return &authRepoFake{sessions: make(map[string]*model.Session), users: users}
}

func (r *authRepoFake) CreateSession(_ context.Context, s *model.Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *authRepoFake) GetRefreshTokenBySessionID(_ context.Context, sessionID string) (string, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return "", gameerr.NotFoundf("session not found")
	}
	return s.RefreshToken, nil
}

func (r *authRepoFake) GetUserBySessionID(_ context.Context, sessionID string) (*model.User, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, gameerr.NotFoundf("session not found")
	}
	for _, u := range r.users.byLogin {
		if u.ID == s.UserID {
			return u, nil
		}
	}
	return nil, gameerr.NotFoundf("user not found")
}

func (r *authRepoFake) DeleteSession(_ context.Context, sessionID string) error {
	if _, ok := r.sessions[sessionID]; !ok {
		return gameerr.NotFoundf("session not found")
	}
	delete(r.sessions, sessionID)
	return nil
}

func newTestService(t *testing.T) (*userRepoFake, *authRepoFake, *mem_repo.WalletRepo, *serv) {
	t.Helper()

	users := newUserRepoFake()
	auths := newAuthRepoFake(users)
	wallets := mem_repo.NewWalletRepository()

	s := NewAuthService(mem_repo.NewManager(), users, auths, wallets, jwtCfg{}, walletCfg{}).(*serv)
	return users, auths, wallets, s
}

func TestRegister_SeedsMoneyWallet(t *testing.T) {
	ctx := context.Background()
	_, auths, wallets, s := newTestService(t)

	data, err := s.Register(ctx, &model.User{Name: "vasya", Login: "vasya", Password: "secret"})
	require.NoError(t, err)

	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.RefreshToken)
	assert.NotEmpty(t, data.SessionID)

	// Стартовый кошелек денежного актива
	bal, err := wallets.GetBalance(ctx, 1, "usd")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(bal))

	// В сессии хранится хэш, не сам токен
	session := auths.sessions[data.SessionID]
	require.NotNil(t, session)
	assert.NotEqual(t, data.RefreshToken, session.RefreshToken)
	assert.True(t, token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken))
}

func TestRegister_DuplicateLogin(t *testing.T) {
	ctx := context.Background()
	_, _, _, s := newTestService(t)

	_, err := s.Register(ctx, &model.User{Login: "vasya", Password: "secret"})
	require.NoError(t, err)

	_, err = s.Register(ctx, &model.User{Login: "vasya", Password: "other"})
	assert.ErrorIs(t, err, gameerr.ErrValidation)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	_, _, _, s := newTestService(t)

	_, err := s.Register(ctx, &model.User{Login: "vasya", Password: "secret"})
	require.NoError(t, err)

	data, err := s.Login(ctx, "vasya", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, data.AccessToken)

	_, err = s.Login(ctx, "vasya", "wrong")
	assert.ErrorIs(t, err, gameerr.ErrValidation)

	_, err = s.Login(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, gameerr.ErrNotFound)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	_, _, _, s := newTestService(t)

	data, err := s.Register(ctx, &model.User{Login: "vasya", Password: "secret"})
	require.NoError(t, err)

	accessToken, err := s.Refresh(ctx, data)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	// Чужой refresh токен отклоняется
	_, err = s.Refresh(ctx, &model.AuthData{SessionID: data.SessionID, RefreshToken: "forged"})
	assert.ErrorIs(t, err, gameerr.ErrValidation)

	_, err = s.Refresh(ctx, &model.AuthData{SessionID: "missing", RefreshToken: data.RefreshToken})
	assert.ErrorIs(t, err, gameerr.ErrNotFound)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	_, auths, _, s := newTestService(t)

	data, err := s.Register(ctx, &model.User{Login: "vasya", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx, data.SessionID))
	assert.Empty(t, auths.sessions)

	// Повторный logout по той же сессии
	err = s.Logout(ctx, data.SessionID)
	assert.ErrorIs(t, err, gameerr.ErrNotFound)
}
