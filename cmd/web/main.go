package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crucial707/weblab/internal/auth"
	"github.com/crucial707/weblab/internal/config"
	"github.com/crucial707/weblab/internal/handlers"
	"github.com/crucial707/weblab/internal/middleware"
	"github.com/crucial707/weblab/internal/models"
	"github.com/crucial707/weblab/internal/posts"
	"github.com/crucial707/weblab/internal/repo"
	"github.com/crucial707/weblab/internal/session"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogFormat)

	if cfg.Env == "prod" && cfg.SecretKey == "your_secret_key_here" {
		log.Fatal("SECRET_KEY must be set when ENV=prod")
	}

	// Provision the lab account.
	users := repo.NewUserRepo()
	hash, err := models.HashPassword(cfg.LabPassword)
	if err != nil {
		log.Fatalf("hash lab password: %v", err)
	}
	if _, err := users.Add(cfg.LabUsername, hash); err != nil {
		log.Fatalf("seed lab user: %v", err)
	}

	sessions := session.NewManager([]byte(cfg.SecretKey), time.Duration(cfg.RememberTTLHours)*time.Hour)
	gate := auth.NewGate(users, sessions)
	gen := posts.NewGenerator(cfg.DemoSeed)
	h := handlers.New(users, gate, sessions, gen)

	loginLimiter := middleware.LoginRateLimiter()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Prometheus)

	// Health and metrics (no templates)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Public pages
	r.Get("/", h.Index)
	r.Get("/about", h.About)
	r.Get("/posts", h.PostList)
	r.Get("/posts/{index}", h.PostDetail)
	r.Get("/visits", h.Visits)
	r.Get("/url_params", h.URLParams)
	r.Get("/headers", h.Headers)
	r.Get("/cookies", h.Cookies)
	r.Get("/form_params", h.FormParams)
	r.With(middleware.MaxBytes(0)).Post("/form_params", h.FormParams)
	r.Get("/phone", h.Phone)
	r.With(middleware.MaxBytes(0)).Post("/phone", h.Phone)

	// Login
	r.Get("/login", h.LoginForm)
	r.With(loginLimiter.Middleware, middleware.MaxBytes(0)).Post("/login", h.LoginSubmit)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAuth)
		r.Get("/secret", h.Secret)
		r.Get("/logout", h.Logout)
	})

	r.NotFound(h.NotFound)

	slog.Info("weblab listening", "port", cfg.Port, "env", cfg.Env)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}

func setupLogging(format string) {
	if format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
}
