package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/crucial707/weblab/internal/auth"
	"github.com/crucial707/weblab/internal/session"
)

//go:embed templates
var templatesFS embed.FS

// render executes the named page template inside the layout. When a
// session is passed, pending flashes are drained into the page and the
// session cookie is re-issued if the session changed; both have to happen
// before the body is written.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, sess *session.Session, name string, data map[string]interface{}) {
	h.renderStatus(w, r, sess, http.StatusOK, name, data)
}

func (h *Handlers) renderStatus(w http.ResponseWriter, r *http.Request, sess *session.Session, status int, name string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}

	if sess != nil {
		if flashes := sess.PopFlashes(); len(flashes) > 0 {
			data["Flashes"] = flashes
		}
		if sess.Authenticated() {
			if user, err := h.Users.GetByID(sess.UserID); err == nil {
				data["CurrentUser"] = user
			}
		}
		if sess.Dirty() {
			if err := h.Sessions.Save(w, sess); err != nil {
				slog.Error("session save", "err", err)
			}
		}
	}
	if _, ok := data["CurrentUser"]; !ok {
		if user, found := auth.UserFrom(r.Context()); found {
			data["CurrentUser"] = user
		}
	}

	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		slog.Error("template read", "name", name, "err", err)
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	layout, err := templatesFS.ReadFile("templates/layout.html")
	if err != nil {
		slog.Error("template read", "name", "layout.html", "err", err)
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	t := template.Must(template.New("layout").Parse(string(layout)))
	t = template.Must(t.Parse(string(content)))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("template execute", "name", name, "err", err)
	}
}
