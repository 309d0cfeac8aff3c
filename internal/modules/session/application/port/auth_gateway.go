package port

import (
	"context"

	catalog "campusAdmin/internal/modules/catalog/domain"
	"campusAdmin/internal/modules/session/domain"
)

// SignUpInput registers a new organization together with its first admin
// user, matching the backend's sign-up contract.
type SignUpInput struct {
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Password         string           `json:"password"`
	OrganizationData OrganizationData `json:"organizationData"`
}

type OrganizationData struct {
	OrganizationName    string `json:"organizationName"`
	OrganizationType    string `json:"organizationType"`
	OrganizationEmail   string `json:"organizationEmail"`
	OrganizationPhone   string `json:"organizationPhone,omitempty"`
	OrganizationAddress string `json:"organizationAddress,omitempty"`
	OrganizationLogo    string `json:"organizationLogo,omitempty"`
}

// AuthGateway is the cookie-session auth client contract. Its wire format
// belongs to the auth backend; the session adapter only consumes these
// operations.
type AuthGateway interface {
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	SignOut(ctx context.Context) error
	GetSession(ctx context.Context) (*domain.Session, error)
	SignUp(ctx context.Context, input SignUpInput) (domain.Session, error)
	VerifyEmail(ctx context.Context, token string) error
}

// OrganizationFetcher resolves the organization record referenced by a
// session user. Implemented over the data provider's transport.
type OrganizationFetcher interface {
	FetchOrganization(ctx context.Context, id string) (catalog.Record, error)
}
