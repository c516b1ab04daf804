package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/healteex/trackctl/internal/apperr"
	domainauth "github.com/healteex/trackctl/internal/domain/auth"
	"github.com/healteex/trackctl/internal/mocks"
	authmocks "github.com/healteex/trackctl/internal/mocks/auth"
	"github.com/healteex/trackctl/internal/ports"
	"github.com/healteex/trackctl/internal/testutil"
)

func newTestStore(t *testing.T) (*mocks.MockAccountsAPI, *authmocks.MemoryVault, *Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountsAPI(ctrl)
	vault := authmocks.NewMemoryVault()
	store := NewStore(context.Background(), Options{
		Accounts: accounts,
		Vault:    vault,
	})
	return accounts, vault, store
}

func TestNewStore_RestoresDurableFirst(t *testing.T) {
	vault := authmocks.NewMemoryVault()
	durable := testutil.AuthSession(true)
	scoped := testutil.AuthSession(false)
	scoped.AccessToken = "scoped-access"
	vault.Durable = &durable
	vault.Scoped = &scoped

	store := NewStore(context.Background(), Options{Vault: vault})
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "access-token", store.AccessToken())
}

func TestNewStore_FallsBackToScoped(t *testing.T) {
	vault := authmocks.NewMemoryVault()
	scoped := testutil.AuthSession(false)
	vault.Scoped = &scoped

	store := NewStore(context.Background(), Options{Vault: vault})
	assert.True(t, store.IsAuthenticated())
	assert.False(t, store.Current().Remember)
}

func TestNewStore_AnonymousWhenEmpty(t *testing.T) {
	store := NewStore(context.Background(), Options{Vault: authmocks.NewMemoryVault()})
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, "", store.AccessToken())
}

func TestSignInWithPassword_PersistsDurably(t *testing.T) {
	accounts, vault, store := newTestStore(t)
	accounts.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(testutil.AuthResponse(true), nil)

	_, err := store.SignInWithPassword(context.Background(), ports.PasswordCredentials{
		Email:      "ada@example.org",
		Password:   "hunter2",
		RememberMe: true,
	})
	require.NoError(t, err)

	assert.True(t, store.IsAuthenticated())
	require.NotNil(t, vault.Durable)
	assert.Nil(t, vault.Scoped)
	assert.Equal(t, "access-token", vault.Durable.AccessToken)
}

func TestSignInWithPassword_ScopedWhenNotRemembered(t *testing.T) {
	accounts, vault, store := newTestStore(t)
	accounts.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(testutil.AuthResponse(false), nil)

	_, err := store.SignInWithPassword(context.Background(), ports.PasswordCredentials{
		Email:    "ada@example.org",
		Password: "hunter2",
	})
	require.NoError(t, err)

	assert.Nil(t, vault.Durable)
	require.NotNil(t, vault.Scoped)
	assert.False(t, vault.Scoped.Remember)
}

func TestSignInWithPassword_FailureKeepsPriorSession(t *testing.T) {
	accounts, vault, store := newTestStore(t)
	accounts.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(testutil.AuthResponse(false), nil)
	accounts.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(domainauth.Response{}, apperr.RequestFailed(401, "bad credentials"))

	_, err := store.SignInWithPassword(context.Background(), ports.PasswordCredentials{
		Email: "ada@example.org", Password: "hunter2",
	})
	require.NoError(t, err)

	_, err = store.SignInWithPassword(context.Background(), ports.PasswordCredentials{
		Email: "ada@example.org", Password: "wrong",
	})
	require.Error(t, err)

	// First session survives the failed attempt, in memory and on disk.
	assert.True(t, store.IsAuthenticated())
	assert.NotNil(t, vault.Scoped)
}

func TestSignInWithGoogle_PersistsSession(t *testing.T) {
	accounts, vault, store := newTestStore(t)
	accounts.EXPECT().
		GoogleSignIn(gomock.Any(), ports.GoogleCredentials{IDToken: "id-token", RememberMe: true}).
		Return(testutil.AuthResponse(true), nil)

	_, err := store.SignInWithGoogle(context.Background(), ports.GoogleCredentials{
		IDToken:    "id-token",
		RememberMe: true,
	})
	require.NoError(t, err)
	assert.True(t, store.IsAuthenticated())
	assert.NotNil(t, vault.Durable)
}

func TestApply_EstablishesSession(t *testing.T) {
	_, vault, store := newTestStore(t)

	store.Apply(context.Background(), testutil.AuthResponse(false))
	assert.True(t, store.IsAuthenticated())
	assert.NotNil(t, vault.Scoped)
}

func TestRefreshAccessToken_NoopWithoutRefreshToken(t *testing.T) {
	_, _, store := newTestStore(t)

	token, err := store.RefreshAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestRefreshAccessToken_UpdatesInPlace(t *testing.T) {
	accounts, vault, store := newTestStore(t)
	store.Apply(context.Background(), testutil.AuthResponse(true))

	accounts.EXPECT().
		RefreshToken(gomock.Any(), "refresh-token").
		Return(domainauth.RefreshResponse{Access: "access-2", TokenType: "Bearer", ExpiresIn: 3600}, nil)

	token, err := store.RefreshAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-2", token)

	sess := store.Current()
	assert.Equal(t, "access-2", sess.AccessToken)
	assert.Equal(t, "refresh-token", sess.RefreshToken)
	require.NotNil(t, sess.User)

	require.NotNil(t, vault.Durable)
	assert.Equal(t, "access-2", vault.Durable.AccessToken)
}

func TestRefreshAccessToken_FailureResetsSession(t *testing.T) {
	accounts, vault, store := newTestStore(t)
	store.Apply(context.Background(), testutil.AuthResponse(true))

	accounts.EXPECT().
		RefreshToken(gomock.Any(), "refresh-token").
		Return(domainauth.RefreshResponse{}, errors.New("refresh rejected"))

	_, err := store.RefreshAccessToken(context.Background())
	require.Error(t, err)

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, vault.Durable)
	assert.Nil(t, vault.Scoped)
}

func TestSignOut_ClearsEverything(t *testing.T) {
	_, vault, store := newTestStore(t)
	store.Apply(context.Background(), testutil.AuthResponse(true))
	require.True(t, store.IsAuthenticated())

	store.SignOut(context.Background())
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, vault.Durable)
	assert.Nil(t, vault.Scoped)
}

func TestPersist_FailureKeepsInMemorySession(t *testing.T) {
	_, vault, store := newTestStore(t)
	vault.FailWrites = true

	store.Apply(context.Background(), testutil.AuthResponse(true))
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, 1, vault.WriteDurableCalls)
}

func TestPersist_IncompleteTokensClearStorage(t *testing.T) {
	_, vault, store := newTestStore(t)

	resp := testutil.AuthResponse(true)
	resp.Refresh = ""
	store.Apply(context.Background(), resp)

	assert.Nil(t, vault.Durable)
	assert.Nil(t, vault.Scoped)
	assert.Equal(t, 1, vault.ClearCalls)
}

func TestSubscribe_NotifiesOnChanges(t *testing.T) {
	_, _, store := newTestStore(t)

	var snapshots []domainauth.Session
	store.Subscribe(func(sess domainauth.Session) {
		snapshots = append(snapshots, sess)
	})

	store.Apply(context.Background(), testutil.AuthResponse(false))
	store.SignOut(context.Background())

	require.Len(t, snapshots, 2)
	assert.True(t, snapshots[0].IsAuthenticated())
	assert.False(t, snapshots[1].IsAuthenticated())
}
