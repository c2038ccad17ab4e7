package auth

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crucial707/weblab/internal/models"
	"github.com/crucial707/weblab/internal/repo"
	"github.com/crucial707/weblab/internal/session"
	"golang.org/x/crypto/bcrypt"
)

type ctxKey string

const userKey ctxKey = "user"

// dummyHash keeps the cost of a login attempt against an unknown username
// in line with a real bcrypt comparison, so the two failure modes cannot
// be told apart by timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Gate owns login, logout, and access control for protected routes.
type Gate struct {
	Users    *repo.UserRepo
	Sessions *session.Manager
}

func NewGate(users *repo.UserRepo, sessions *session.Manager) *Gate {
	return &Gate{Users: users, Sessions: sessions}
}

// Authenticate looks up a user by username and verifies the password.
// Unknown username and wrong password fail identically.
func (g *Gate) Authenticate(username, password string) (*models.User, bool) {
	user, err := g.Users.GetByUsername(username)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, false
	}
	if !user.CheckPassword(password) {
		return nil, false
	}
	return user, true
}

// Login marks the session authenticated as user. With remember set the
// session cookie survives browser restarts.
func (g *Gate) Login(sess *session.Session, user *models.User, remember bool) {
	sess.SetUser(user.ID, remember)
}

// Logout clears authentication state; the rest of the session (visit
// count, pending flashes) is kept.
func (g *Gate) Logout(sess *session.Session) {
	sess.ClearUser()
}

// RequireAuth redirects unauthenticated requests to the login form with
// the original path captured in ?next=. A session pointing at a user id
// that no longer exists counts as unauthenticated. On success the user is
// placed in the request context.
func (g *Gate) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := g.Sessions.Load(r)
		if !sess.Authenticated() {
			redirectToLogin(w, r)
			return
		}
		user, err := g.Users.GetByID(sess.UserID)
		if err != nil {
			sess.ClearUser()
			_ = g.Sessions.Save(w, sess)
			redirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusFound)
}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom returns the authenticated user from the context, if any.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
