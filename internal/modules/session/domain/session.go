package domain

import catalog "campusAdmin/internal/modules/catalog/domain"

// Routes the adapter redirects to. The UI layer owns the actual routing;
// these are contract values it expects back.
const (
	RouteHome  = "/"
	RouteLogin = "/login"
)

// User is the session user as attested by the auth backend. The adapter
// reads it and never mutates it.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Image          string `json:"image,omitempty"`
	Role           string `json:"role"`
	ImageCldPubID  string `json:"imageCldPubId,omitempty"`
	OrganizationID string `json:"organizationId,omitempty"`
	EmailVerified  bool   `json:"emailVerified,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

// Session is the cookie-backed proof of an authenticated identity.
type Session struct {
	User User `json:"user"`
}

// AuthError is the structured failure shape returned by login/logout
// instead of a raw transport error.
type AuthError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e *AuthError) Error() string {
	return e.Name + ": " + e.Message
}

// LoginResult reports the outcome of a login or logout attempt.
type LoginResult struct {
	Success    bool       `json:"success"`
	RedirectTo string     `json:"redirectTo,omitempty"`
	Error      *AuthError `json:"error,omitempty"`
}

// CheckResult is the authenticated/unauthenticated verdict. Check never
// fails; any session-query error collapses into an unauthenticated verdict.
type CheckResult struct {
	Authenticated bool   `json:"authenticated"`
	Logout        bool   `json:"logout,omitempty"`
	RedirectTo    string `json:"redirectTo,omitempty"`
}

// Identity is the session user enriched with the organization lookup.
type Identity struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Avatar        string                `json:"avatar,omitempty"`
	Role          string                `json:"role"`
	EmailVerified bool                  `json:"emailVerified,omitempty"`
	Organization  *catalog.Organization `json:"organization"`
}

// ErrorVerdict classifies a transport error for the UI: session-expired
// errors force a logout, everything else passes through unchanged.
type ErrorVerdict struct {
	Logout     bool   `json:"logout,omitempty"`
	RedirectTo string `json:"redirectTo,omitempty"`
	Err        error  `json:"-"`
}
