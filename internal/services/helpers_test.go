package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aradamart/internal/store"
)

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func seededAccounts(t *testing.T) *store.Accounts {
	t.Helper()
	seed, err := store.SeedAccounts()
	require.NoError(t, err)
	return store.NewAccounts(seed...)
}
