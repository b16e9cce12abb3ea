// Command bloglist runs the blog-catalog HTTP service: user registration and
// login, bearer-token-protected blog CRUD with owner-only mutations, and the
// public listings. Configuration comes from the environment, state lives in
// PostgreSQL, and the process shuts down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/user/bloglist-go/auth"
	"github.com/user/bloglist-go/blogs"
	"github.com/user/bloglist-go/config"
	"github.com/user/bloglist-go/db"
	"github.com/user/bloglist-go/logger"
	"github.com/user/bloglist-go/users"
)

func main() {
	// .env is a development convenience; in production the variables are set
	// directly and the file is absent.
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("APP_ENV") == "development")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	database, err := db.NewDB(cfg.DB)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	tokens := auth.NewTokenAuthority(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	userRepo := auth.NewPostgresUserRepository(database)
	authService := auth.NewService(userRepo, tokens, log)
	authHandlers := auth.NewHandlers(authService)

	blogRepo := blogs.NewPostgresRepository(database)
	blogService := blogs.NewService(blogRepo, log)
	blogHandlers := blogs.NewHandlers(blogService)

	userService := users.NewService(database)
	userHandlers := users.NewHandlers(userService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		auth.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", authHandlers.HandleRegister())
		r.Get("/", userHandlers.HandleListUsers())
	})
	r.Post("/api/login", authHandlers.HandleLogin())

	r.Route("/api/blogs", func(r chi.Router) {
		r.Get("/", blogHandlers.HandleList())

		// Mutations require a verified bearer token.
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(tokens))
			r.Post("/", blogHandlers.HandleCreate())
			r.Put("/{id}", blogHandlers.HandleUpdate())
			r.Delete("/{id}", blogHandlers.HandleDelete())
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
