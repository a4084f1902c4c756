package services_test

import (
	"testing"

	"github.com/MedProgramer24/inventory-project/internal/repos"
	"github.com/MedProgramer24/inventory-project/internal/services"

	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*services.AuthService, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	users := repos.NewUserRepo(db)
	return services.NewAuthService(users), users
}

func TestLoginRejectsUnknownAndWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login("sid-1", "nobody@inventory.test", "Passw0rd!")
	require.ErrorIs(t, err, services.ErrBadCreds)

	_, err = svc.Login("sid-1", "alice@inventory.test", "wrong-password")
	require.ErrorIs(t, err, services.ErrBadCreds)

	u, err := svc.CurrentUser("sid-1")
	require.NoError(t, err)
	require.Nil(t, u, "failed login must not bind the session")
}

func TestLoginBindsAndLogoutUnbinds(t *testing.T) {
	svc, _ := newAuthService(t)

	u, err := svc.Login("sid-2", "alice@inventory.test", "Passw0rd!")
	require.NoError(t, err)
	require.Equal(t, "u-alice", u.ID)

	got, err := svc.CurrentUser("sid-2")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "u-alice", got.ID)

	require.NoError(t, svc.Logout("sid-2"))

	got, err = svc.CurrentUser("sid-2")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCurrentUserRefreshesLastSeen(t *testing.T) {
	svc, users := newAuthService(t)

	_, err := svc.Login("sid-3", "bob@inventory.test", "Passw0rd!")
	require.NoError(t, err)

	_, err = users.DB.Exec(`UPDATE sessions SET last_seen='2000-01-01 00:00:00' WHERE id='sid-3'`)
	require.NoError(t, err)

	_, err = svc.CurrentUser("sid-3")
	require.NoError(t, err)

	var lastSeen string
	require.NoError(t, users.DB.Get(&lastSeen, `SELECT last_seen FROM sessions WHERE id='sid-3'`))
	require.NotEqual(t, "2000-01-01 00:00:00", lastSeen)
}
