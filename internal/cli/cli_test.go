package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	liveinfra "campusAdmin/internal/modules/live/infrastructure"
	"campusAdmin/internal/platform/devserver"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	store := devserver.NewStore()
	if err := devserver.Seed(store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	server := devserver.New(store, liveinfra.NewHub(), "cli-test-secret", time.Hour)

	e := echo.New()
	server.Register(e)
	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)
	return ts
}

func runCommand(t *testing.T, backend *httptest.Server, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append([]string{"--api", backend.URL + "/api"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCLI_LoginThenList(t *testing.T) {
	backend := newBackend(t)
	t.Setenv("CAMPUSADM_SESSION_FILE", filepath.Join(t.TempDir(), "session"))

	out, err := runCommand(t, backend, "login", "admin@campus.test", "--password", devserver.SeedPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "logged in as admin@campus.test") {
		t.Fatalf("unexpected login output: %s", out)
	}

	out, err = runCommand(t, backend, "list", "users", "--filter", "role=teacher")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var result struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode list output: %v\n%s", err, out)
	}
	if result.Total != 2 {
		t.Fatalf("expected 2 teachers, got %d", result.Total)
	}
}

func TestCLI_LoginRejectsBadPassword(t *testing.T) {
	backend := newBackend(t)
	t.Setenv("CAMPUSADM_SESSION_FILE", filepath.Join(t.TempDir(), "session"))

	_, err := runCommand(t, backend, "login", "admin@campus.test", "--password", "wrong")
	if err == nil || !strings.Contains(err.Error(), "Invalid email or password") {
		t.Fatalf("expected credential error, got %v", err)
	}
}

func TestCLI_WhoamiRequiresSession(t *testing.T) {
	backend := newBackend(t)
	t.Setenv("CAMPUSADM_SESSION_FILE", filepath.Join(t.TempDir(), "session"))

	_, err := runCommand(t, backend, "whoami")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected not logged in, got %v", err)
	}
}

func TestCLI_StatsAfterLogin(t *testing.T) {
	backend := newBackend(t)
	t.Setenv("CAMPUSADM_SESSION_FILE", filepath.Join(t.TempDir(), "session"))

	if _, err := runCommand(t, backend, "login", "admin@campus.test", "--password", devserver.SeedPassword); err != nil {
		t.Fatalf("login: %v", err)
	}

	out, err := runCommand(t, backend, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	var stats struct {
		Users int `json:"users"`
	}
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("decode stats output: %v\n%s", err, out)
	}
	if stats.Users != 6 {
		t.Fatalf("unexpected user count: %d", stats.Users)
	}
}
