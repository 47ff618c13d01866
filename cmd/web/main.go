package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/penbot/penbot-web/internal/backend"
	"github.com/penbot/penbot-web/internal/booking"
	"github.com/penbot/penbot-web/internal/http/handlers"
	webmw "github.com/penbot/penbot-web/internal/http/middleware"
	"github.com/penbot/penbot-web/internal/session"
	"github.com/penbot/penbot-web/pkg/config"
	"github.com/penbot/penbot-web/pkg/events"
	"github.com/penbot/penbot-web/pkg/logger"
	mw "github.com/penbot/penbot-web/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Event bus is optional; without a broker everything still works,
	// change notifications just stay in-process.
	var bus events.EventBus = events.NoopBus{}
	if cfg.NATS.Enabled {
		natsBus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect event bus", "error", err)
			os.Exit(1)
		}
		defer natsBus.Close()
		bus = natsBus
	}

	var store session.Store
	redisStore, err := session.NewRedisStore(cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB, cfg.Session.TokenKey)
	if err != nil {
		logger.Error("Failed to open session store", "error", err)
		os.Exit(1)
	}
	defer redisStore.Close()
	store = redisStore

	sessions := session.NewService(store, bus)
	defer sessions.Close()

	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	flow := booking.NewService(client, sessions, bus, cfg.Booking.MinHeadcount, cfg.Booking.MaxHeadcount)

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Recover)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(mw.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Mount("/calendar", handlers.NewCalendarHandler().Routes())
		r.Mount("/session", handlers.NewSessionHandler(sessions).Routes())
		r.Mount("/chat", handlers.NewChatHandler(client, sessions).Routes())
		r.Mount("/bookings", handlers.NewBookingHandler(flow).Routes())

		r.Route("/me", func(r chi.Router) {
			r.Use(webmw.RequireSession(sessions))
			r.Mount("/", handlers.NewProfileHandler(client, sessions).Routes())
		})

		r.Route("/host", func(r chi.Router) {
			r.Use(webmw.RequireHost(sessions))
			r.Mount("/", handlers.NewHostHandler(client, sessions).Routes())
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down penbot web service...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Shutdown error", "error", err)
		}
	}()

	logger.Info("Starting penbot web service", "port", cfg.Server.Port, "backend", cfg.Backend.BaseURL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
