package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("  Pharmacist ")
	assert.True(t, ok)
	assert.Equal(t, RolePharmacist, role)

	_, ok = ParseRole("astronaut")
	assert.False(t, ok)

	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestSession_IsAuthenticated(t *testing.T) {
	user := &User{ID: 1, Email: "ada@example.org"}

	assert.True(t, Session{AccessToken: "tok", User: user}.IsAuthenticated())
	assert.False(t, Session{AccessToken: "", User: user}.IsAuthenticated())
	assert.False(t, Session{AccessToken: "tok"}.IsAuthenticated())
	assert.False(t, Session{}.IsAuthenticated())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada Obi", User{FirstName: "Ada", LastName: "Obi", Username: "ada"}.DisplayName())
	assert.Equal(t, "Ada", User{FirstName: "Ada", Username: "ada"}.DisplayName())
	assert.Equal(t, "ada", User{Username: "ada", Email: "ada@example.org"}.DisplayName())
	assert.Equal(t, "ada@example.org", User{Email: "ada@example.org"}.DisplayName())
}

func TestResponse_Session(t *testing.T) {
	role := RoleFacilityAdmin
	resp := Response{
		Access:     "access-1",
		Refresh:    "refresh-1",
		RememberMe: true,
		User:       User{ID: 2, Role: &role},
	}

	sess := resp.Session()
	assert.Equal(t, "access-1", sess.AccessToken)
	assert.Equal(t, "refresh-1", sess.RefreshToken)
	assert.True(t, sess.Remember)
	require.NotNil(t, sess.User)
	assert.Equal(t, resp.User, *sess.User)
	assert.True(t, sess.IsAuthenticated())
}
