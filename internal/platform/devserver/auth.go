package devserver

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"campusAdmin/internal/modules/catalog/domain"
)

// SessionCookie is the cookie the auth endpoints issue and the session
// middleware checks.
const SessionCookie = "campus.session"

type authService struct {
	store  *Store
	secret []byte
	ttl    time.Duration

	mu           sync.Mutex
	verifyTokens map[string]string
}

func newAuthService(store *Store, secret string, ttl time.Duration) *authService {
	return &authService{
		store:        store,
		secret:       []byte(secret),
		ttl:          ttl,
		verifyTokens: make(map[string]string),
	}
}

func (a *authService) issueToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *authService) parseToken(token string) (string, bool) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", false
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// sessionUser resolves the request's cookie to a stored user.
func (a *authService) sessionUser(c echo.Context) (map[string]any, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	userID, ok := a.parseToken(cookie.Value)
	if !ok {
		return nil, false
	}
	user, ok := a.store.Get(domain.ResourceUsers, userID)
	if !ok {
		return nil, false
	}
	return user, true
}

func (a *authService) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(a.ttl),
	})
}

func (a *authService) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *authService) handleSignIn(c echo.Context) error {
	var creds credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, messageBody("Malformed credentials"))
	}

	email := strings.TrimSpace(strings.ToLower(creds.Email))
	user, ok := a.store.FindBy(domain.ResourceUsers, "email", email)
	if !ok {
		return c.JSON(http.StatusUnauthorized, messageBody("Invalid email or password"))
	}
	hash, _ := user["passwordHash"].(string)
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, messageBody("Invalid email or password"))
	}

	token, err := a.issueToken(user["id"].(string))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageBody("Could not issue session"))
	}
	a.setSessionCookie(c, token)
	slog.Info("session opened", slog.String("email", email))
	return c.JSON(http.StatusOK, map[string]any{"user": sanitizeUser(user)})
}

func (a *authService) handleSignOut(c echo.Context) error {
	a.clearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (a *authService) handleGetSession(c echo.Context) error {
	user, ok := a.sessionUser(c)
	if !ok {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, map[string]any{"user": sanitizeUser(user)})
}

type signUpRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	OrganizationData struct {
		OrganizationName    string `json:"organizationName"`
		OrganizationType    string `json:"organizationType"`
		OrganizationEmail   string `json:"organizationEmail"`
		OrganizationPhone   string `json:"organizationPhone"`
		OrganizationAddress string `json:"organizationAddress"`
		OrganizationLogo    string `json:"organizationLogo"`
	} `json:"organizationData"`
}

// handleSignUp registers an organization together with its first admin
// account, mirroring the production onboarding flow.
func (a *authService) handleSignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageBody("Malformed sign-up payload"))
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" || req.OrganizationData.OrganizationName == "" {
		return c.JSON(http.StatusBadRequest, messageBody("Missing required sign-up fields"))
	}
	if _, exists := a.store.FindBy(domain.ResourceUsers, "email", req.Email); exists {
		return c.JSON(http.StatusConflict, messageBody("Email already registered"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageBody("Could not store credentials"))
	}

	org := a.store.Insert("organizations", map[string]any{
		"name":    req.OrganizationData.OrganizationName,
		"type":    req.OrganizationData.OrganizationType,
		"email":   req.OrganizationData.OrganizationEmail,
		"phone":   req.OrganizationData.OrganizationPhone,
		"address": req.OrganizationData.OrganizationAddress,
		"logo":    req.OrganizationData.OrganizationLogo,
	})
	user := a.store.Insert(domain.ResourceUsers, map[string]any{
		"name":           req.Name,
		"email":          req.Email,
		"role":           domain.RoleAdmin,
		"organizationId": org["id"],
		"emailVerified":  false,
		"passwordHash":   string(hash),
	})

	verifyToken := uuid.NewString()
	a.mu.Lock()
	a.verifyTokens[verifyToken] = user["id"].(string)
	a.mu.Unlock()
	slog.Info("verification token issued", slog.String("email", req.Email), slog.String("token", verifyToken))

	token, err := a.issueToken(user["id"].(string))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageBody("Could not issue session"))
	}
	a.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, map[string]any{"user": sanitizeUser(user)})
}

func (a *authService) handleVerifyEmail(c echo.Context) error {
	token := strings.TrimSpace(c.QueryParam("token"))

	a.mu.Lock()
	userID, ok := a.verifyTokens[token]
	if ok {
		delete(a.verifyTokens, token)
	}
	a.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusBadRequest, messageBody("Invalid or expired verification token"))
	}

	if _, ok := a.store.Update(domain.ResourceUsers, userID, map[string]any{"emailVerified": true}); !ok {
		return c.JSON(http.StatusBadRequest, messageBody("Invalid or expired verification token"))
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

// requireSession guards the data routes with the session cookie.
func (a *authService) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := a.sessionUser(c); !ok {
			return c.JSON(http.StatusUnauthorized, messageBody("Unauthorized"))
		}
		return next(c)
	}
}

func sanitizeUser(user map[string]any) map[string]any {
	clean := make(map[string]any, len(user))
	for key, value := range user {
		if key == "passwordHash" {
			continue
		}
		clean[key] = value
	}
	return clean
}

func messageBody(message string) map[string]any {
	return map[string]any{"message": message}
}
