// Package main provides the entry point for the insurance back-office gateway.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"insurance-backoffice/internal/config"
	"insurance-backoffice/internal/forms"
	"insurance-backoffice/internal/handler"
	"insurance-backoffice/internal/logger"
	"insurance-backoffice/internal/middleware"
	"insurance-backoffice/internal/remote"
)

// Run is the testable entrypoint for the application.
func Run(ctx context.Context) error {
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)
	log.Info("Starting insurance back-office gateway")

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	customers := remote.NewCustomerClient(cfg.CustomerServiceURL, httpClient, log)
	policies := remote.NewPolicyClient(cfg.PolicyServiceURL, httpClient, log)
	claims := remote.NewClaimClient(cfg.ClaimServiceURL, httpClient, log)
	auth := remote.NewAuthClient(cfg.AuthServiceURL, httpClient, log)

	h := handler.New(log, forms.New(), customers, policies, claims, auth)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))

	r.Get("/healthz", h.Healthz)
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)
		r.Post("/auth/register", h.Register)
		r.Post("/auth/register/validate", h.ValidateRegistrationStep)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))

			r.Post("/auth/logout", h.Logout)
			r.Get("/auth/me", h.Me)
			r.Get("/dashboard", h.Dashboard)

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.ListCustomers)
				r.Post("/", h.CreateCustomer)
				r.Get("/{id}", h.GetCustomer)
				r.Put("/{id}", h.UpdateCustomer)
				r.Delete("/{id}", h.DeleteCustomer)
			})

			r.Route("/policies", func(r chi.Router) {
				r.Get("/", h.ListPolicies)
				r.Post("/", h.CreatePolicy)
				r.Get("/{id}", h.GetPolicy)
				r.Put("/{id}", h.UpdatePolicy)
				r.Delete("/{id}", h.DeletePolicy)
			})

			r.Route("/claims", func(r chi.Router) {
				r.Get("/", h.ListClaims)
				r.Post("/", h.CreateClaim)
				r.Get("/{id}", h.GetClaim)
				r.Put("/{id}", h.UpdateClaim)
				r.Delete("/{id}", h.DeleteClaim)

				// Workflow transitions are reserved to back-office admins.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles("ADMIN"))
					r.Post("/{id}/approve", h.ApproveClaim)
					r.Post("/{id}/reject", h.RejectClaim)
					r.Post("/{id}/settle", h.SettleClaim)
				})
			})
		})
	})

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx); err != nil {
		os.Exit(1)
	}
}
