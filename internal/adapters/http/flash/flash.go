// Package flash keeps one-time success and error messages in a signed
// cookie session so they survive the redirect that follows a form post.
package flash

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/fugu-chop/todo-db/internal/platform/config"
)

const (
	keySuccess = "success"
	keyError   = "error"

	maxAge = 7 * 24 * 60 * 60
)

// Messages are the flashes read for one rendered page.
type Messages struct {
	Success string
	Error   string
}

// Empty reports whether there is nothing to show.
func (m Messages) Empty() bool {
	return m.Success == "" && m.Error == ""
}

// Store reads and writes flashes.
type Store struct {
	cookies *sessions.CookieStore
	name    string
}

// New creates a Store signing cookies with cfg.Secret.
func New(cfg config.SessionConfig) *Store {
	cookies := sessions.NewCookieStore([]byte(cfg.Secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cookies, name: cfg.CookieName}
}

// Success queues msg for the next page. It must be called before the
// response header is written.
func (s *Store) Success(w http.ResponseWriter, r *http.Request, msg string) error {
	return s.add(w, r, keySuccess, msg)
}

// Error queues an error message for the next page.
func (s *Store) Error(w http.ResponseWriter, r *http.Request, msg string) error {
	return s.add(w, r, keyError, msg)
}

func (s *Store) add(w http.ResponseWriter, r *http.Request, key, msg string) error {
	session := s.session(r)
	session.AddFlash(msg, key)
	return session.Save(r, w)
}

// Pop returns the queued flashes and clears them. When several messages of
// one kind were queued the latest wins.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) (Messages, error) {
	session := s.session(r)

	var m Messages
	m.Success = last(session.Flashes(keySuccess))
	m.Error = last(session.Flashes(keyError))
	if m.Empty() {
		return m, nil
	}
	return m, session.Save(r, w)
}

// session returns the request's session. A cookie that fails verification,
// for example after a secret rotation, yields a fresh session.
func (s *Store) session(r *http.Request) *sessions.Session {
	session, _ := s.cookies.Get(r, s.name)
	if session == nil {
		session = sessions.NewSession(s.cookies, s.name)
		session.Options = s.cookies.Options
		session.IsNew = true
	}
	return session
}

func last(flashes []any) string {
	for i := len(flashes) - 1; i >= 0; i-- {
		if msg, ok := flashes[i].(string); ok {
			return msg
		}
	}
	return ""
}
