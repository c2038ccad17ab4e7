// Package handlers renders the lab's pages: demo posts, request echo
// pages, the phone checker, the visit counter, and the login flow.
package handlers

import (
	"github.com/crucial707/weblab/internal/auth"
	"github.com/crucial707/weblab/internal/posts"
	"github.com/crucial707/weblab/internal/repo"
	"github.com/crucial707/weblab/internal/session"
)

type Handlers struct {
	Users    *repo.UserRepo
	Gate     *auth.Gate
	Sessions *session.Manager
	Posts    *posts.Generator
}

func New(users *repo.UserRepo, gate *auth.Gate, sessions *session.Manager, gen *posts.Generator) *Handlers {
	return &Handlers{
		Users:    users,
		Gate:     gate,
		Sessions: sessions,
		Posts:    gen,
	}
}
