package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crucial707/weblab/internal/models"
	"github.com/crucial707/weblab/internal/repo"
	"github.com/crucial707/weblab/internal/session"
)

func newGate(t *testing.T) *Gate {
	t.Helper()
	users := repo.NewUserRepo()
	hash, err := models.HashPassword("qwerty")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if _, err := users.Add("user", hash); err != nil {
		t.Fatalf("Add: %v", err)
	}
	sessions := session.NewManager([]byte("test-secret"), time.Hour)
	return NewGate(users, sessions)
}

func TestGate_Authenticate(t *testing.T) {
	g := newGate(t)

	if user, ok := g.Authenticate("user", "qwerty"); !ok || user.Username != "user" {
		t.Errorf("valid credentials rejected: user=%+v ok=%v", user, ok)
	}

	// Wrong password and unknown username must fail identically.
	for _, c := range []struct{ username, password string }{
		{"user", "wrong"},
		{"nouser", "x"},
	} {
		user, ok := g.Authenticate(c.username, c.password)
		if ok || user != nil {
			t.Errorf("Authenticate(%q, %q): expected failure", c.username, c.password)
		}
	}
}

func TestGate_LoginLogout(t *testing.T) {
	g := newGate(t)
	user, _ := g.Users.GetByUsername("user")

	sess := &session.Session{}
	sess.RecordVisit()

	g.Login(sess, user, true)
	if !sess.Authenticated() || sess.UserID != user.ID || !sess.Remember {
		t.Errorf("after Login: %+v", sess)
	}

	g.Logout(sess)
	if sess.Authenticated() || sess.Remember {
		t.Errorf("after Logout: %+v", sess)
	}
	if sess.Visits != 1 {
		t.Errorf("Logout must keep visit count, got %d", sess.Visits)
	}
}

func TestGate_RequireAuth_RedirectsAnonymous(t *testing.T) {
	g := newGate(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for anonymous requests")
	})
	req := httptest.NewRequest("GET", "/secret", nil)
	rec := httptest.NewRecorder()
	g.RequireAuth(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status: got %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login?next=%2Fsecret" {
		t.Errorf("Location: got %q", loc)
	}
}

func TestGate_RequireAuth_PassesAuthenticated(t *testing.T) {
	g := newGate(t)
	user, _ := g.Users.GetByUsername("user")

	sess := &session.Session{}
	sess.SetUser(user.ID, false)
	rec := httptest.NewRecorder()
	if err := g.Sessions.Save(rec, sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got, ok := UserFrom(r.Context())
		if !ok || got.ID != user.ID {
			t.Errorf("context user: got %+v ok=%v", got, ok)
		}
	})
	req := httptest.NewRequest("GET", "/secret", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	rec2 := httptest.NewRecorder()
	g.RequireAuth(next).ServeHTTP(rec2, req)

	if !called {
		t.Error("handler was not called")
	}
}

// A session pointing at a deleted user must not pass the gate.
func TestGate_RequireAuth_UnknownUserID(t *testing.T) {
	g := newGate(t)

	sess := &session.Session{}
	sess.SetUser(99, false)
	rec := httptest.NewRecorder()
	if err := g.Sessions.Save(rec, sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	req := httptest.NewRequest("GET", "/secret", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	rec2 := httptest.NewRecorder()
	g.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run")
	})).ServeHTTP(rec2, req)

	if rec2.Code != http.StatusFound {
		t.Fatalf("status: got %d, want 302", rec2.Code)
	}
}
