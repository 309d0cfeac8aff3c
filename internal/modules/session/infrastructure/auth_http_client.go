package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"campusAdmin/internal/modules/session/application/port"
	"campusAdmin/internal/modules/session/domain"
	"campusAdmin/internal/shared/httperror"
	"campusAdmin/internal/shared/rest"
)

// AuthHTTPClient speaks the auth backend's cookie-session wire protocol,
// mounted under {base}/auth. It shares the REST transport so the session
// cookie set on sign-in rides on every subsequent data request.
type AuthHTTPClient struct {
	rest *rest.Client
}

var _ port.AuthGateway = (*AuthHTTPClient)(nil)

func NewAuthHTTPClient(client *rest.Client) *AuthHTTPClient {
	return &AuthHTTPClient{rest: client}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionEnvelope is the get-session/sign-in response shape. A null or
// empty body means no active session.
type sessionEnvelope struct {
	User *domain.User `json:"user"`
}

func (c *AuthHTTPClient) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	body, err := c.post(ctx, "auth/sign-in/email", credentialsPayload{Email: email, Password: password})
	if err != nil {
		return domain.Session{}, err
	}
	session, err := decodeSession(body)
	if err != nil {
		return domain.Session{}, err
	}
	if session == nil {
		return domain.Session{}, httperror.New("sign-in response carried no user", 0)
	}
	return *session, nil
}

func (c *AuthHTTPClient) SignOut(ctx context.Context) error {
	_, err := c.post(ctx, "auth/sign-out", struct{}{})
	return err
}

func (c *AuthHTTPClient) GetSession(ctx context.Context) (*domain.Session, error) {
	body, err := c.call(ctx, http.MethodGet, "auth/get-session", nil)
	if err != nil {
		return nil, err
	}
	return decodeSession(body)
}

func (c *AuthHTTPClient) SignUp(ctx context.Context, input port.SignUpInput) (domain.Session, error) {
	body, err := c.post(ctx, "auth/sign-up/email", input)
	if err != nil {
		return domain.Session{}, err
	}
	session, err := decodeSession(body)
	if err != nil {
		return domain.Session{}, err
	}
	if session == nil {
		return domain.Session{}, httperror.New("sign-up response carried no user", 0)
	}
	return *session, nil
}

func (c *AuthHTTPClient) VerifyEmail(ctx context.Context, token string) error {
	endpoint := "auth/verify-email?token=" + url.QueryEscape(token)
	_, err := c.call(ctx, http.MethodGet, endpoint, nil)
	return err
}

func (c *AuthHTTPClient) post(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
}

func (c *AuthHTTPClient) call(ctx context.Context, method, endpoint string, payload io.Reader) ([]byte, error) {
	req, err := c.rest.NewRequest(ctx, method, endpoint, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.rest.Do(req)
	if err != nil {
		return nil, httperror.New(err.Error(), 0)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, httperror.New(err.Error(), 0)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, httperror.FromResponse(res.StatusCode, body)
	}
	return body, nil
}

func decodeSession(body []byte) (*domain.Session, error) {
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, nil
	}
	var envelope sessionEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, httperror.New(fmt.Sprintf("decode session: %v", err), 0)
	}
	if envelope.User == nil || envelope.User.ID == "" {
		return nil, nil
	}
	return &domain.Session{User: *envelope.User}, nil
}
