package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Load(r)
	h.render(w, r, sess, "index.html", map[string]interface{}{
		"Title": "Home",
	})
}

func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Load(r)
	h.render(w, r, sess, "about.html", map[string]interface{}{
		"Title": "About the author",
	})
}

func (h *Handlers) PostList(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Load(r)
	h.render(w, r, sess, "posts.html", map[string]interface{}{
		"Title": "Posts",
		"Posts": h.Posts.Posts(),
	})
}

func (h *Handlers) PostDetail(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.NotFound(w, r)
		return
	}
	post, ok := h.Posts.Post(index)
	if !ok {
		h.NotFound(w, r)
		return
	}

	sess := h.Sessions.Load(r)
	h.render(w, r, sess, "post.html", map[string]interface{}{
		"Title": post.Title,
		"Post":  post,
	})
}

// NotFound renders the 404 page for unmatched routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Load(r)
	h.renderStatus(w, r, sess, http.StatusNotFound, "notfound.html", map[string]interface{}{
		"Title": "Page not found",
		"Path":  r.URL.Path,
	})
}
