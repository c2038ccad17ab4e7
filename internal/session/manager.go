package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultCookieName is the session cookie name.
const DefaultCookieName = "weblab_session"

// Manager signs session state into an HS256 JWT stored in an HttpOnly
// cookie and reads it back on the next request. A cookie that is missing,
// expired, tampered with, or signed with the wrong key silently yields a
// fresh anonymous session.
type Manager struct {
	secret      []byte
	cookieName  string
	rememberTTL time.Duration
}

// NewManager builds a Manager. rememberTTL is the cookie and token
// lifetime used when the client asked to be remembered; sessions without
// the remember flag get a browser-session cookie instead.
func NewManager(secret []byte, rememberTTL time.Duration) *Manager {
	return &Manager{
		secret:      secret,
		cookieName:  DefaultCookieName,
		rememberTTL: rememberTTL,
	}
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookieName
}

type sessionClaims struct {
	Visits   int     `json:"visits,omitempty"`
	UserID   int     `json:"uid,omitempty"`
	Remember bool    `json:"remember,omitempty"`
	Flashes  []Flash `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// Load returns the session carried by the request, or a fresh one.
func (m *Manager) Load(r *http.Request) *Session {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return &Session{}
	}

	token, err := jwt.ParseWithClaims(c.Value, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return &Session{}
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return &Session{}
	}

	return &Session{
		ID:       claims.ID,
		Visits:   claims.Visits,
		UserID:   claims.UserID,
		Remember: claims.Remember,
		flashes:  claims.Flashes,
	}
}

// Save signs the session and sets the cookie. Call before writing the
// response body. The token always carries an expiry so a captured cookie
// eventually dies; Max-Age is only set when the session is remembered.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	now := time.Now()
	claims := &sessionClaims{
		Visits:   s.Visits,
		UserID:   s.UserID,
		Remember: s.Remember,
		Flashes:  s.flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.rememberTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if s.Remember {
		cookie.MaxAge = int(m.rememberTTL.Seconds())
	}
	http.SetCookie(w, cookie)

	s.dirty = false
	return nil
}
