package kvstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesapp/internal/domain"
	"salesapp/internal/kvstore"
)

func newTestStore(t *testing.T) *kvstore.Store {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)
	kv := kvstore.New(s.Addr(), "", 0)
	t.Cleanup(func() { _ = kv.Close() })
	require.NoError(t, kv.Ping(context.Background()))
	return kv
}

func TestUserCreateIsAtomicPerEmail(t *testing.T) {
	users := kvstore.NewUserStore(newTestStore(t))
	ctx := context.Background()

	u := &domain.User{ID: "u-1", Email: "alice@x.com", FirstName: "Alice", Hash: "$2a$hash"}
	require.NoError(t, users.Create(ctx, u))

	// Same email, any casing, loses the SETNX race.
	dup := &domain.User{ID: "u-2", Email: "Alice@X.com", FirstName: "Impostor", Hash: "$2a$other"}
	err := users.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	got, err := users.ByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName, "original record must be unchanged")
}

func TestByEmailScansKeyspace(t *testing.T) {
	users := kvstore.NewUserStore(newTestStore(t))
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		require.NoError(t, users.Create(ctx, &domain.User{ID: "u-" + email, Email: email}))
	}

	got, err := users.ByEmail(ctx, "B@X.COM")
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", got.Email)

	_, err = users.ByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateRemarksOverwrites(t *testing.T) {
	users := kvstore.NewUserStore(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &domain.User{ID: "u-1", Email: "alice@x.com", Remarks: "old"}))
	require.NoError(t, users.UpdateRemarks(ctx, "alice@x.com", "new"))

	got, err := users.ByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Remarks)

	assert.ErrorIs(t, users.UpdateRemarks(ctx, "ghost@x.com", "boo"), domain.ErrNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	users := kvstore.NewUserStore(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &domain.User{ID: "u-1", Email: "alice@x.com"}))
	require.NoError(t, users.BindSession(ctx, "sid-1", "alice@x.com"))

	got, err := users.SessionUser(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", got.Email)

	require.NoError(t, users.UnbindSession(ctx, "sid-1"))
	_, err = users.SessionUser(ctx, "sid-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerListFiltersByOwner(t *testing.T) {
	kv := newTestStore(t)
	customers := kvstore.NewCustomerStore(kv)
	ctx := context.Background()

	require.NoError(t, customers.Create(ctx, &domain.Customer{ID: "c-1", OwnerEmail: "alice@x.com", Name: "Acme", URL: "http://acme.test", CreatedAt: "2026-01-01T00:00:00Z"}))
	require.NoError(t, customers.Create(ctx, &domain.Customer{ID: "c-2", OwnerEmail: "bob@x.com", Name: "Globex", URL: "http://globex.test", CreatedAt: "2026-01-02T00:00:00Z"}))
	require.NoError(t, customers.Create(ctx, &domain.Customer{ID: "c-3", OwnerEmail: "alice@x.com", Name: "Initech", URL: "http://initech.test", CreatedAt: "2026-01-03T00:00:00Z"}))

	got, err := customers.ListByOwner(ctx, "alice@x.com")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Acme", got[0].Name)
	assert.Equal(t, "Initech", got[1].Name)

	empty, err := customers.ListByOwner(ctx, "carol@x.com")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
