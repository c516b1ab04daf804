package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns.

import "strings"

// Role represents the backend's role classification for an account.
// Keep string form for easy persistence and query parameters.
// Roles shape which data the frontend surfaces; they are not a client-side
// security boundary.
type Role string

const (
	RolePharmacist    Role = "pharmacist"
	RoleFacilityAdmin Role = "facility_admin"
	RolePolicyMaker   Role = "policy_maker"
	RoleSuperAdmin    Role = "super_admin"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	switch r {
	case RolePharmacist, RoleFacilityAdmin, RolePolicyMaker, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// ParseRole normalizes a role string and reports whether it is supported.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if role.Valid() {
		return role, true
	}
	return "", false
}

// Roles lists every supported role, in display order.
func Roles() []Role {
	return []Role{RolePharmacist, RoleFacilityAdmin, RolePolicyMaker, RoleSuperAdmin}
}

// User is the authenticated account snapshot returned by the backend on each
// auth event. It is immutable from the client's point of view.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      *Role  `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DisplayName returns the best available human-readable name for the user.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// Session is the client-held proof of authentication. An empty access token
// means anonymous; a populated one requires a user snapshot alongside it.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
	Remember     bool   `json:"remember"`
}

// IsAuthenticated reports whether the session proves an authenticated user.
// The access token and user snapshot must agree: both present or neither.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != "" && s.User != nil
}

// Response is the backend's full authentication payload, produced by password
// sign-in, Google sign-in, and signup verification alike.
type Response struct {
	Access     string `json:"access"`
	Refresh    string `json:"refresh"`
	TokenType  string `json:"token_type"`
	ExpiresIn  int    `json:"expires_in"`
	RememberMe bool   `json:"remember_me"`
	User       User   `json:"user"`
}

// Session converts the payload into the session it establishes.
func (r Response) Session() Session {
	user := r.User
	return Session{
		AccessToken:  r.Access,
		RefreshToken: r.Refresh,
		User:         &user,
		Remember:     r.RememberMe,
	}
}

// RefreshResponse is the reduced payload returned by the token-refresh
// endpoint: a fresh access token for an existing session.
type RefreshResponse struct {
	Access    string `json:"access"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}
