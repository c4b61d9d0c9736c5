package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"candleworks/internal/domain"
	"candleworks/internal/repos"
	"candleworks/internal/services"
)

func newAuthEnv(t *testing.T) *services.AuthService {
	t.Helper()
	db := memdbAll(t)
	if _, err := db.Exec(`CREATE TABLE tokens(id TEXT PRIMARY KEY, user_id TEXT,
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP, last_seen TEXT)`); err != nil {
		t.Fatal(err)
	}
	return &services.AuthService{Users: repos.NewUserRepo(db)}
}

func TestRegister_DuplicateEmailOrUsername(t *testing.T) {
	svc := newAuthEnv(t)

	u, err := svc.Register(services.RegisterInput{
		Email: "maya@example.com", Username: "maya", Password: "Passw0rd!", FullName: "Maya",
	})
	require.NoError(t, err)
	require.False(t, u.IsAdmin)

	_, err = svc.Register(services.RegisterInput{Email: "maya@example.com", Username: "other", Password: "Passw0rd!"})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.Register(services.RegisterInput{Email: "other@example.com", Username: "maya", Password: "Passw0rd!"})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	svc := newAuthEnv(t)
	_, err := svc.Register(services.RegisterInput{Email: "maya@example.com", Username: "maya", Password: "Passw0rd!"})
	require.NoError(t, err)

	_, _, err = svc.Login("maya", "wrong-password")
	require.ErrorIs(t, err, domain.ErrBadCreds)
	_, _, err = svc.Login("nobody", "Passw0rd!")
	require.ErrorIs(t, err, domain.ErrBadCreds)

	token, u, err := svc.Login("maya", "Passw0rd!")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.CurrentUser(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	require.NoError(t, svc.Logout(token))
	_, err = svc.CurrentUser(token)
	require.ErrorIs(t, err, domain.ErrBadCreds)
}
