package cli

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"campusAdmin/internal/shared/rest"
)

const sessionCookieName = "campus.session"

// sessionFile persists the session cookie between CLI invocations. The jar
// itself lives in memory, so without this every command would start logged
// out.
type sessionFile struct {
	path string
}

func newSessionFile() *sessionFile {
	if override := strings.TrimSpace(os.Getenv("CAMPUSADM_SESSION_FILE")); override != "" {
		return &sessionFile{path: override}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return &sessionFile{path: ".campusadm-session"}
	}
	return &sessionFile{path: filepath.Join(home, ".campusadm", "session")}
}

// restore loads a previously saved cookie into the transport's jar.
func (f *sessionFile) restore(client *rest.Client) error {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	value := strings.TrimSpace(string(raw))
	if value == "" {
		return nil
	}

	base, err := url.Parse(client.BaseURL())
	if err != nil {
		return err
	}
	client.HTTPClient().Jar.SetCookies(base, []*http.Cookie{{
		Name:  sessionCookieName,
		Value: value,
		Path:  "/",
	}})
	return nil
}

// save writes the jar's current session cookie to disk.
func (f *sessionFile) save(client *rest.Client) error {
	base, err := url.Parse(client.BaseURL())
	if err != nil {
		return err
	}
	for _, cookie := range client.HTTPClient().Jar.Cookies(base) {
		if cookie.Name == sessionCookieName {
			if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
				return err
			}
			return os.WriteFile(f.path, []byte(cookie.Value), 0o600)
		}
	}
	return f.clear()
}

func (f *sessionFile) clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
