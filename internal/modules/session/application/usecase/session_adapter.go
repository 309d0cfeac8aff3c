package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	catalog "campusAdmin/internal/modules/catalog/domain"
	"campusAdmin/internal/modules/session/application/port"
	"campusAdmin/internal/modules/session/domain"
	"campusAdmin/internal/shared/httperror"
)

// SessionAdapter answers the authentication questions the UI layer asks:
// is the caller authenticated, what may they do, who are they (enriched
// with their organization), and how should a given error be classified.
type SessionAdapter struct {
	auth port.AuthGateway
	orgs port.OrganizationFetcher

	cache *orgCache
	clock func() time.Time
}

func NewSessionAdapter(auth port.AuthGateway, orgs port.OrganizationFetcher) *SessionAdapter {
	return &SessionAdapter{
		auth:  auth,
		orgs:  orgs,
		cache: newOrgCache(),
		clock: time.Now,
	}
}

// Login delegates to the auth backend's email sign-in. Auth rejection is a
// structured result, not a Go error.
func (a *SessionAdapter) Login(ctx context.Context, email, password string) domain.LoginResult {
	if _, err := a.auth.SignIn(ctx, email, password); err != nil {
		message := httperror.Normalize(err).Message
		if message == "" || message == "request failed" {
			message = "Invalid email or password"
		}
		return domain.LoginResult{
			Success: false,
			Error:   &domain.AuthError{Name: "Login Error", Message: message},
		}
	}
	// A fresh login must never see organization data cached for a previous
	// session's user.
	a.cache.clear()
	return domain.LoginResult{Success: true, RedirectTo: domain.RouteHome}
}

// Logout delegates to sign-out. A backend failure surfaces as a structured
// error; the cache is cleared either way.
func (a *SessionAdapter) Logout(ctx context.Context) domain.LoginResult {
	a.cache.clear()
	if err := a.auth.SignOut(ctx); err != nil {
		message := httperror.Normalize(err).Message
		if message == "" || message == "request failed" {
			message = "Failed to logout"
		}
		return domain.LoginResult{
			Success: false,
			Error:   &domain.AuthError{Name: "Logout Error", Message: message},
		}
	}
	return domain.LoginResult{Success: true, RedirectTo: domain.RouteLogin}
}

// Check resolves to an authenticated/unauthenticated verdict and never
// fails: any error during the session query is treated as anonymous.
func (a *SessionAdapter) Check(ctx context.Context) domain.CheckResult {
	session, err := a.auth.GetSession(ctx)
	if err == nil && session != nil && session.User.ID != "" {
		return domain.CheckResult{Authenticated: true}
	}
	if err != nil {
		slog.Debug("session check failed", slog.Any("error", err))
	}
	return domain.CheckResult{Authenticated: false, Logout: true, RedirectTo: domain.RouteLogin}
}

// Permissions returns the session user's role, or "" when anonymous.
func (a *SessionAdapter) Permissions(ctx context.Context) (string, error) {
	session, err := a.auth.GetSession(ctx)
	if err != nil || session == nil {
		return "", nil
	}
	return session.User.Role, nil
}

// Identity returns nil when anonymous. The organization reference on the
// user is resolved through a 5-minute cache; a failed lookup degrades to a
// nil organization and never fails the identity fetch.
func (a *SessionAdapter) Identity(ctx context.Context) (*domain.Identity, error) {
	session, err := a.auth.GetSession(ctx)
	if err != nil || session == nil {
		return nil, nil
	}

	user := session.User
	identity := &domain.Identity{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Avatar:        user.Image,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
	}
	identity.Organization = a.resolveOrganization(ctx, user)
	return identity, nil
}

func (a *SessionAdapter) resolveOrganization(ctx context.Context, user domain.User) *catalog.Organization {
	if strings.TrimSpace(user.OrganizationID) == "" {
		return nil
	}

	record, ok := a.cache.get(user.ID, a.clock())
	if !ok {
		fetched, err := a.orgs.FetchOrganization(ctx, user.OrganizationID)
		if err != nil {
			slog.Debug("organization lookup failed", slog.String("organizationId", user.OrganizationID), slog.Any("error", err))
			return nil
		}
		a.cache.set(user.ID, fetched, a.clock())
		record = fetched
	}

	var organization catalog.Organization
	if err := catalog.DecodeRecord(record, &organization); err != nil {
		slog.Debug("organization decode failed", slog.String("organizationId", user.OrganizationID), slog.Any("error", err))
		return nil
	}
	return &organization
}

// OnError classifies a transport error: 401/403 force a logout and a
// redirect to the login route, anything else passes through unchanged.
func (a *SessionAdapter) OnError(err error) domain.ErrorVerdict {
	switch httperror.StatusOf(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrorVerdict{Logout: true, RedirectTo: domain.RouteLogin, Err: err}
	default:
		return domain.ErrorVerdict{Err: err}
	}
}
