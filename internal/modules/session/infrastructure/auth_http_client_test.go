package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campusAdmin/internal/shared/httperror"
	"campusAdmin/internal/shared/rest"
)

func newAuthBackend(t *testing.T) *AuthHTTPClient {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/sign-in/email", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "campus.session", Value: "tok-1", Path: "/"})
		_, _ = w.Write([]byte(`{"user":{"id":"u1","name":"Ada","email":"ada@campus.test","role":"admin"}}`))
	})
	mux.HandleFunc("/auth/get-session", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		if cookie, err := r.Cookie("campus.session"); err != nil || cookie.Value != "tok-1" {
			_, _ = w.Write([]byte(`null`))
			return
		}
		_, _ = w.Write([]byte(`{"user":{"id":"u1","name":"Ada","email":"ada@campus.test","role":"admin"}}`))
	})
	mux.HandleFunc("/auth/sign-out", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "campus.session", Value: "", Path: "/", MaxAge: -1})
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewAuthHTTPClient(rest.New(server.URL, time.Second, nil))
}

func TestAuthClient_SessionCookieRoundTrip(t *testing.T) {
	client := newAuthBackend(t)
	ctx := context.Background()

	if session, err := client.GetSession(ctx); err != nil || session != nil {
		t.Fatalf("expected anonymous before sign-in, got %+v err=%v", session, err)
	}

	session, err := client.SignIn(ctx, "ada@campus.test", "secret")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if session.User.ID != "u1" {
		t.Fatalf("unexpected user: %+v", session.User)
	}

	// The cookie set on sign-in must carry the session on later calls.
	current, err := client.GetSession(ctx)
	if err != nil {
		t.Fatalf("get-session failed: %v", err)
	}
	if current == nil || current.User.Email != "ada@campus.test" {
		t.Fatalf("expected session via cookie jar, got %+v", current)
	}

	if err := client.SignOut(ctx); err != nil {
		t.Fatalf("sign-out failed: %v", err)
	}
}

func TestAuthClient_SignInErrorIsCanonical(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))
	t.Cleanup(server.Close)
	client := NewAuthHTTPClient(rest.New(server.URL, time.Second, nil))

	_, err := client.SignIn(context.Background(), "nope@campus.test", "bad")
	if err == nil {
		t.Fatal("expected error")
	}
	if httperror.StatusOf(err) != http.StatusUnauthorized {
		t.Fatalf("expected canonical 401, got %v", err)
	}
}

func TestOrganizationClient_AcceptsEnvelopeAndBareBody(t *testing.T) {
	envelopeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organization/org-1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":{"id":"org-1","name":"Springfield High"}}`))
	}))
	t.Cleanup(envelopeServer.Close)

	client := NewOrganizationHTTPClient(rest.New(envelopeServer.URL, time.Second, nil))
	record, err := client.FetchOrganization(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record["name"] != "Springfield High" {
		t.Fatalf("unexpected record: %#v", record)
	}

	bareServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"org-2","name":"Shelbyville Prep"}`))
	}))
	t.Cleanup(bareServer.Close)

	client = NewOrganizationHTTPClient(rest.New(bareServer.URL, time.Second, nil))
	record, err = client.FetchOrganization(context.Background(), "org-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record["name"] != "Shelbyville Prep" {
		t.Fatalf("unexpected record: %#v", record)
	}
}
