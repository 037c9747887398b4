package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/phungtienthanh/portfolio-api/internal/http/cors"
	"github.com/phungtienthanh/portfolio-api/internal/http/handlers"
	"github.com/phungtienthanh/portfolio-api/internal/platform/mailer"
	"github.com/phungtienthanh/portfolio-api/internal/ratelimit"
	"github.com/phungtienthanh/portfolio-api/pkg/config"
	"github.com/phungtienthanh/portfolio-api/pkg/logger"
	mw "github.com/phungtienthanh/portfolio-api/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	m := newMailer(cfg)

	limiter := ratelimit.NewStore()
	stopSweep := limiter.StartSweeping(10*time.Minute, time.Hour)
	defer stopSweep()

	guard := cors.NewGuard(cfg.CORS.AllowedOrigins)

	h := handlers.New(cfg, m, limiter, guard)

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Recover)

	r.Get("/health", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Options("/contact", h.ContactPreflight)
		r.Post("/contact", h.Contact)
		r.Get("/projects", h.Projects)
		r.Get("/timeline", h.Timeline)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down portfolio API...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Shutdown error", "error", err)
		}
	}()

	logger.Info("Starting portfolio API",
		"port", cfg.Server.Port,
		"env", cfg.App.Env,
		"mail_provider", cfg.Mail.Provider,
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func newMailer(cfg *config.Config) mailer.Service {
	switch cfg.Mail.Provider {
	case config.ProviderSMTP:
		return mailer.NewSMTPMailer(
			cfg.Mail.SMTPHost,
			cfg.Mail.SMTPPort,
			cfg.Mail.FromEmail,
			cfg.Mail.FromName,
			cfg.Mail.SMTPUser,
			cfg.Mail.SMTPPass,
			cfg.Mail.SMTPUseTLS,
		)
	case config.ProviderMailerSend:
		return mailer.NewMailerSendMailer(cfg.Mail.MailerSendKey, cfg.Mail.FromName, cfg.Mail.FromEmail)
	default:
		return mailer.NewDevMailer()
	}
}
