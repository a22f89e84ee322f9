package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aradamart/internal/domain"
	"aradamart/internal/services"
	"aradamart/internal/store"
)

func TestLoginSeedAdmin(t *testing.T) {
	svc := services.NewAuthService(seededAccounts(t))

	got, ok := svc.Login("ADMIN@aradamart.com", "admin123")
	require.True(t, ok)
	cur, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, got, cur)
	assert.Equal(t, "1", cur.ID)
	assert.Equal(t, "Chala Abebe", cur.Name)
	assert.Equal(t, domain.RoleAdmin, cur.Role)
	assert.Empty(t, svc.Err())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := services.NewAuthService(seededAccounts(t))

	cases := []struct{ name, email, pw string }{
		{"wrong password", "admin@aradamart.com", "admin124"},
		{"password case", "admin@aradamart.com", "ADMIN123"},
		{"unknown email", "ghost@aradamart.com", "admin123"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			acc, ok := svc.Login(tc.email, tc.pw)
			assert.False(t, ok)
			assert.Zero(t, acc)
			assert.Equal(t, services.MsgBadCreds, svc.Err())
			_, ok = svc.Current()
			assert.False(t, ok)
		})
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc := services.NewAuthService(seededAccounts(t))

	reg, ok := svc.Register("", "New@Shop.com", "secret1")
	require.True(t, ok)
	cur, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, reg, cur)
	assert.Equal(t, "User", cur.Name)
	assert.Equal(t, "new@shop.com", cur.Email)
	assert.Equal(t, domain.RoleUser, cur.Role)

	svc.Logout()
	again, ok := svc.Login("new@shop.com", "secret1")
	require.True(t, ok)
	assert.Equal(t, cur.ID, again.ID)
}

func TestRegisterDuplicateKeepsSession(t *testing.T) {
	svc := services.NewAuthService(seededAccounts(t))
	_, ok := svc.Login("user@aradamart.com", "user123")
	require.True(t, ok)

	_, ok = svc.Register("Someone", "USER@aradamart.com", "whatever")
	assert.False(t, ok)
	assert.Equal(t, services.MsgEmailExists, svc.Err())

	cur, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "2", cur.ID)
	assert.Len(t, svc.Users.List(), 2)
}

func TestLogoutKeepsError(t *testing.T) {
	svc := services.NewAuthService(seededAccounts(t))
	_, ok := svc.Login("admin@aradamart.com", "admin123")
	require.True(t, ok)
	_, ok = svc.Login("admin@aradamart.com", "nope")
	assert.False(t, ok)

	svc.Logout()
	_, ok = svc.Current()
	assert.False(t, ok)
	assert.Equal(t, services.MsgBadCreds, svc.Err())

	svc.ClearError()
	assert.Empty(t, svc.Err())
}

func TestRoleChangeVisibleAtNextLogin(t *testing.T) {
	accounts := seededAccounts(t)
	authSvc := services.NewAuthService(accounts)
	users := services.NewUserService(accounts, store.NewActivityLog(0))

	_, err := users.Update(context.Background(), "2", "user@aradamart.com", "Tizazab Ayana", domain.RoleAdmin)
	require.NoError(t, err)

	cur, ok := authSvc.Login("user@aradamart.com", "user123")
	require.True(t, ok)
	assert.Equal(t, domain.RoleAdmin, cur.Role)
}

func TestLoginReturnsOwnAccountWhenSessionMoves(t *testing.T) {
	svc := services.NewAuthService(seededAccounts(t))

	user, ok := svc.Login("user@aradamart.com", "user123")
	require.True(t, ok)
	// a second sign-in lands before the first caller reads its result
	admin, ok := svc.Login("admin@aradamart.com", "admin123")
	require.True(t, ok)

	assert.Equal(t, "2", user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, "1", admin.ID)
	cur, _ := svc.Current()
	assert.Equal(t, "1", cur.ID)
}

func TestConcurrentLoginsReturnMatchedAccount(t *testing.T) {
	svc := services.NewAuthService(seededAccounts(t))

	creds := []struct{ email, pw, id string }{
		{"admin@aradamart.com", "admin123", "1"},
		{"user@aradamart.com", "user123", "2"},
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		c := creds[i%2]
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc, ok := svc.Login(c.email, c.pw)
			assert.True(t, ok)
			assert.Equal(t, c.id, acc.ID)
		}()
	}
	wg.Wait()
}
