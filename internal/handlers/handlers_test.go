package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/crucial707/weblab/internal/auth"
	"github.com/crucial707/weblab/internal/models"
	"github.com/crucial707/weblab/internal/posts"
	"github.com/crucial707/weblab/internal/repo"
	"github.com/crucial707/weblab/internal/session"
	"github.com/go-chi/chi/v5"
)

// newTestApp wires the handlers into a router the way cmd/web does.
func newTestApp(t *testing.T) http.Handler {
	t.Helper()

	users := repo.NewUserRepo()
	hash, err := models.HashPassword("qwerty")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if _, err := users.Add("user", hash); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	sessions := session.NewManager([]byte("test-secret"), time.Hour)
	gate := auth.NewGate(users, sessions)
	h := New(users, gate, sessions, posts.NewGenerator(1))

	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/about", h.About)
	r.Get("/posts", h.PostList)
	r.Get("/posts/{index}", h.PostDetail)
	r.Get("/visits", h.Visits)
	r.Get("/url_params", h.URLParams)
	r.Get("/headers", h.Headers)
	r.Get("/cookies", h.Cookies)
	r.Get("/form_params", h.FormParams)
	r.Post("/form_params", h.FormParams)
	r.Get("/phone", h.Phone)
	r.Post("/phone", h.Phone)
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.LoginSubmit)
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAuth)
		r.Get("/secret", h.Secret)
		r.Get("/logout", h.Logout)
	})
	r.NotFound(h.NotFound)
	return r
}

// jar carries cookies between requests like a browser would.
type jar struct {
	cookies map[string]*http.Cookie
}

func newJar() *jar {
	return &jar{cookies: map[string]*http.Cookie{}}
}

func (j *jar) update(rec *httptest.ResponseRecorder) {
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(j.cookies, c.Name)
			continue
		}
		j.cookies[c.Name] = c
	}
}

func (j *jar) apply(req *http.Request) {
	for _, c := range j.cookies {
		req.AddCookie(c)
	}
}

func (j *jar) get(t *testing.T, app http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	j.apply(req)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	j.update(rec)
	return rec
}

func (j *jar) postForm(t *testing.T, app http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	j.apply(req)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	j.update(rec)
	return rec
}

// doRequest serves a prepared request and returns the recorder.
func doRequest(app http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

// findCookie returns the named cookie from a response, or nil.
func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// sessionCookie returns the session cookie set by a response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.DefaultCookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func (j *jar) login(t *testing.T, app http.Handler, path, username, password string, remember bool) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	if remember {
		form.Set("remember", "on")
	}
	return j.postForm(t, app, path, form)
}
