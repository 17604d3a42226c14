package domain

import "github.com/google/uuid"

// CurrentUser is the authenticated caller for the duration of one request.
// The auth middleware populates it from token claims; an unauthenticated
// request gets the zero identity via Anonymous.
type CurrentUser struct {
	UserID          uuid.UUID
	Role            Role
	IsAuthenticated bool
}

// Anonymous is the identity used when no valid token was presented. It
// carries the least-privileged role so hierarchy checks deny everything
// that requires authority.
func Anonymous() CurrentUser {
	return CurrentUser{
		UserID:          uuid.Nil,
		Role:            RoleEmployee,
		IsAuthenticated: false,
	}
}
