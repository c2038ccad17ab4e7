package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/crucial707/weblab/internal/metrics"
)

// loginFailedMessage is deliberately the same for unknown usernames and
// wrong passwords.
const loginFailedMessage = "Invalid username or password"

func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Load(r)
	if sess.Authenticated() {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.render(w, r, sess, "login.html", map[string]interface{}{
		"Title": "Sign in",
		"Next":  r.URL.Query().Get("next"),
	})
}

func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	remember := r.FormValue("remember") == "on"
	next := r.URL.Query().Get("next")

	user, ok := h.Gate.Authenticate(username, password)
	metrics.RecordLogin(ok)
	if !ok {
		sess := h.Sessions.Load(r)
		h.render(w, r, sess, "login.html", map[string]interface{}{
			"Title": "Sign in",
			"Error": loginFailedMessage,
			"Next":  next,
		})
		return
	}

	sess := h.Sessions.Load(r)
	h.Gate.Login(sess, user, remember)
	sess.AddFlash("success", "You are now logged in.")
	if err := h.Sessions.Save(w, sess); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, safeNext(next), http.StatusFound)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Load(r)
	h.Gate.Logout(sess)
	sess.AddFlash("info", "You have been logged out.")
	if err := h.Sessions.Save(w, sess); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) Secret(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Load(r)
	h.render(w, r, sess, "secret.html", map[string]interface{}{
		"Title": "Secret",
	})
}

// safeNext keeps the post-login redirect on this site. Only local paths
// are accepted; anything else falls back to the landing page.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	if u, err := url.Parse(next); err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	return next
}
