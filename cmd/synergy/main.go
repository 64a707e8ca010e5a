package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"synergy/internal/access"
	"synergy/internal/config"
	"synergy/internal/http-server/handlers/auth/callback"
	"synergy/internal/http-server/handlers/auth/login"
	"synergy/internal/http-server/handlers/auth/logout"
	"synergy/internal/http-server/handlers/auth/profile"
	"synergy/internal/http-server/handlers/event/createEvent"
	"synergy/internal/http-server/handlers/event/deleteEvent"
	"synergy/internal/http-server/handlers/event/getAllEvents"
	"synergy/internal/http-server/handlers/event/getEvent"
	"synergy/internal/http-server/handlers/event/updateEvent"
	"synergy/internal/http-server/handlers/health"
	"synergy/internal/http-server/handlers/leaderboard"
	"synergy/internal/http-server/handlers/scan/authorize"
	"synergy/internal/http-server/handlers/scan/scanTeam"
	"synergy/internal/http-server/handlers/team/createTeam"
	"synergy/internal/http-server/handlers/team/joinTeam"
	"synergy/internal/http-server/handlers/team/leaveTeam"
	"synergy/internal/http-server/handlers/team/myTeam"
	"synergy/internal/http-server/handlers/volunteer/addVolunteer"
	"synergy/internal/http-server/handlers/volunteer/getVolunteer"
	"synergy/internal/http-server/handlers/volunteer/listVolunteers"
	"synergy/internal/http-server/handlers/volunteer/removeVolunteer"
	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/http-server/middleware/mwlogger"
	"synergy/internal/lib/logger/handlers/slogpretty"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/lib/seal"
	"synergy/internal/lib/token"
	"synergy/internal/services/event"
	"synergy/internal/services/role"
	"synergy/internal/services/scan"
	"synergy/internal/services/team"
	"synergy/internal/services/volunteer"
	"synergy/internal/session"
	"synergy/internal/sso"
	"synergy/internal/storage"
	"synergy/internal/storage/mongodb"
	"synergy/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting synergy", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("Debug messages are enabled")

	ctx := context.Background()

	store, err := setupStorage(ctx, cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	redisClient, err := session.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", sl.Err(err))
		os.Exit(1)
	}
	sessions := session.NewStore(redisClient, cfg.Session.TTL)

	issuer, err := token.NewIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Error("failed to init token issuer", sl.Err(err))
		os.Exit(1)
	}

	sealer, err := seal.New(cfg.Auth.SecretCodeKey)
	if err != nil {
		log.Error("failed to init secret code cipher", sl.Err(err))
		os.Exit(1)
	}

	provider := sso.NewMicrosoft(&cfg.OAuth)
	roles := role.New(log, cfg.Auth.AdminEmail, cfg.OAuth.AllowedDomain, store)

	scanEngine := scan.New(log, store, issuer)
	teams := team.New(log, store, cfg.Teams.MaxMembers, cfg.Teams.Deadline)
	events := event.New(log, store, sealer)
	volunteers := volunteer.New(log, store)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Use(mwauth.Authenticate(log, sessions, cfg.Session.CookieName))

		r.Get("/health", health.New(log, store))

		r.Get("/login", login.New(log, provider, cfg.Session.Secure))
		r.Get("/auth", callback.New(log, provider, roles, sessions, callback.Options{
			SessionCookie: cfg.Session.CookieName,
			SessionTTL:    cfg.Session.TTL,
			Secure:        cfg.Session.Secure,
			FrontendURL:   cfg.FrontendURL,
		}))
		r.Get("/logout", logout.New(log, sessions, cfg.Session.CookieName, cfg.Session.Secure, cfg.FrontendURL))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.RequireRoles(access.Anyone...))

			r.Get("/user/profile", profile.New(log))
			r.Get("/events", getAllEvents.New(log, events))
			r.Get("/events/{id}", getEvent.New(log, events))
			r.Get("/my_team", myTeam.New(log, teams))
			r.Get("/leaderboard", leaderboard.New(log, teams))
		})

		r.Group(func(r chi.Router) {
			r.Use(mwauth.RequireRoles(access.Admin...))

			r.Post("/events", createEvent.New(log, events))
			r.Put("/events/{id}", updateEvent.New(log, events))
			r.Delete("/events/{id}", deleteEvent.New(log, events))
			r.Post("/volunteers", addVolunteer.New(log, volunteers))
			r.Delete("/volunteers/{rollNumber}", removeVolunteer.New(log, volunteers))
		})

		r.Group(func(r chi.Router) {
			r.Use(mwauth.RequireRoles(access.AdminVolunteer...))

			r.Get("/volunteers", listVolunteers.New(log, volunteers))
			r.Get("/volunteers/{rollNumber}", getVolunteer.New(log, volunteers))
			r.Post("/volunteer/authorize", authorize.New(log, scanEngine))
			r.Post("/volunteer/scan", scanTeam.New(log, scanEngine))
		})

		r.Group(func(r chi.Router) {
			r.Use(mwauth.RequireRoles(access.TeamFormers...))

			r.Post("/create_team", createTeam.New(log, teams))
			r.Post("/join_team_by_code", joinTeam.New(log, teams))
			r.Post("/leave_team", leaveTeam.New(log, teams))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	if err = redisClient.Close(); err != nil {
		log.Error("failed to close redis connection", sl.Err(err))
	}

	log.Info("storage and session connections closed")
}

func setupStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case "mongo":
		return mongodb.New(ctx, &cfg.Mongo)
	case "postgres":
		return postgres.InitDB(&cfg.Database)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
