package handlers

import (
	"net/http"
)

// demoCookieName is the cookie toggled by the /cookies page.
const demoCookieName = "test_cookie"

// demoCookieMaxAge is one day in seconds.
const demoCookieMaxAge = 86400

func (h *Handlers) URLParams(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Load(r)
	h.render(w, r, sess, "url_params.html", map[string]interface{}{
		"Title":  "URL parameters",
		"Params": r.URL.Query(),
	})
}

func (h *Handlers) Headers(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Load(r)
	h.render(w, r, sess, "headers.html", map[string]interface{}{
		"Title":   "Request headers",
		"Headers": r.Header,
	})
}

// Cookies echoes the request cookies and strictly toggles the demo
// cookie: set when absent, deleted when present.
func (h *Handlers) Cookies(w http.ResponseWriter, r *http.Request) {
	cookies := map[string]string{}
	for _, c := range r.Cookies() {
		cookies[c.Name] = c.Value
	}

	if _, err := r.Cookie(demoCookieName); err != nil {
		http.SetCookie(w, &http.Cookie{
			Name:   demoCookieName,
			Value:  "test_value",
			Path:   "/",
			MaxAge: demoCookieMaxAge,
		})
	} else {
		http.SetCookie(w, &http.Cookie{
			Name:   demoCookieName,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}

	sess := h.Sessions.Load(r)
	h.render(w, r, sess, "cookies.html", map[string]interface{}{
		"Title":   "Cookies",
		"Cookies": cookies,
	})
}

func (h *Handlers) FormParams(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title": "Form parameters",
	}
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		data["FormData"] = r.PostForm
	}

	sess := h.Sessions.Load(r)
	h.render(w, r, sess, "form_params.html", data)
}
