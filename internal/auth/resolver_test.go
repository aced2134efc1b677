package auth_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinesolutions/website-backend/internal/auth"
	"github.com/trinesolutions/website-backend/internal/model"
)

// fakeStore is an in-memory auth.AdminStore for resolver and bootstrap
// tests.
type fakeStore struct {
	mu       sync.Mutex
	accounts map[string]*model.AdminAccount // keyed by id
	countErr error
	insErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{accounts: map[string]*model.AdminAccount{}}
}

func (s *fakeStore) CountAdmins(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countErr != nil {
		return 0, s.countErr
	}
	return int64(len(s.accounts)), nil
}

func (s *fakeStore) AdminByEmail(_ context.Context, email string) (*model.AdminAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Email == strings.ToLower(email) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, auth.ErrAdminNotFound
}

func (s *fakeStore) AdminByID(_ context.Context, id string) (*model.AdminAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, auth.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *fakeStore) InsertAdmin(_ context.Context, a *model.AdminAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insErr != nil {
		return s.insErr
	}
	cp := *a
	cp.Email = strings.ToLower(cp.Email)
	s.accounts[cp.ID] = &cp
	return nil
}

func (s *fakeStore) put(a model.AdminAccount) { s.accounts[a.ID] = &a }

func TestResolver_ValidToken(t *testing.T) {
	store := newFakeStore()
	store.put(model.AdminAccount{
		ID: "id-1", Email: "ops@example.com", PasswordHash: "x", IsActive: true,
	})
	tokens := auth.NewTokenService(testSecret, time.Hour)
	resolver := auth.NewResolver(tokens, store)

	token, _, err := tokens.Issue("id-1")
	require.NoError(t, err)

	acct, err := resolver.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "id-1", acct.ID)
	assert.Equal(t, "ops@example.com", acct.Email)
}

func TestResolver_GarbageAndUnknownSubjectIndistinguishable(t *testing.T) {
	store := newFakeStore()
	tokens := auth.NewTokenService(testSecret, time.Hour)
	resolver := auth.NewResolver(tokens, store)

	// Well-signed token whose subject was deleted from the store.
	orphan, _, err := tokens.Issue("gone-account")
	require.NoError(t, err)

	_, errOrphan := resolver.Resolve(context.Background(), orphan)
	_, errGarbage := resolver.Resolve(context.Background(), "complete garbage")

	assert.ErrorIs(t, errOrphan, auth.ErrUnauthenticated)
	assert.ErrorIs(t, errGarbage, auth.ErrUnauthenticated)
	// Same sentinel either way; a caller cannot probe which ids exist.
	assert.Equal(t, errOrphan, errGarbage)
}

func TestResolver_DisabledAccount(t *testing.T) {
	store := newFakeStore()
	store.put(model.AdminAccount{
		ID: "id-2", Email: "off@example.com", PasswordHash: "x", IsActive: false,
	})
	tokens := auth.NewTokenService(testSecret, time.Hour)
	resolver := auth.NewResolver(tokens, store)

	token, _, err := tokens.Issue("id-2")
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrDisabled)
	assert.NotErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestResolver_ExpiredTokenUnauthenticated(t *testing.T) {
	store := newFakeStore()
	store.put(model.AdminAccount{
		ID: "id-3", Email: "late@example.com", PasswordHash: "x", IsActive: true,
	})
	tokens := auth.NewTokenService(testSecret, time.Second)
	resolver := auth.NewResolver(tokens, store)

	token, _, err := tokens.Issue("id-3")
	require.NoError(t, err)

	time.Sleep(2 * time.Second)

	_, err = resolver.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestEnsureDefaultAdmin_CreatesOnceOnEmptyStore(t *testing.T) {
	store := newFakeStore()

	require.NoError(t, auth.EnsureDefaultAdmin(context.Background(), store, 4))
	require.NoError(t, auth.EnsureDefaultAdmin(context.Background(), store, 4))

	n, err := store.CountAdmins(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	acct, err := store.AdminByEmail(context.Background(), auth.DefaultAdminEmail)
	require.NoError(t, err)
	assert.True(t, acct.IsActive)
	assert.Equal(t, "admin", acct.Role)
	assert.NotEmpty(t, acct.ID)
	assert.True(t, auth.VerifyPassword(acct.PasswordHash, auth.DefaultAdminPassword))
}

func TestEnsureDefaultAdmin_NoopWhenAccountsExist(t *testing.T) {
	store := newFakeStore()
	store.put(model.AdminAccount{ID: "existing", Email: "a@b.c", PasswordHash: "x", IsActive: true})

	require.NoError(t, auth.EnsureDefaultAdmin(context.Background(), store, 4))

	n, _ := store.CountAdmins(context.Background())
	assert.EqualValues(t, 1, n)
	_, err := store.AdminByEmail(context.Background(), auth.DefaultAdminEmail)
	assert.ErrorIs(t, err, auth.ErrAdminNotFound)
}

func TestEnsureDefaultAdmin_ReportsStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.countErr = errors.New("connection refused")

	err := auth.EnsureDefaultAdmin(context.Background(), store, 4)
	assert.ErrorContains(t, err, "connection refused")

	store.countErr = nil
	store.insErr = errors.New("write timeout")
	err = auth.EnsureDefaultAdmin(context.Background(), store, 4)
	assert.ErrorContains(t, err, "write timeout")
}
