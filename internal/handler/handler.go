// Package handler contains the HTTP handlers behind the back-office views:
// dashboard, per-entity lists, details and forms, claim actions and auth.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"insurance-backoffice/internal/apperror"
	"insurance-backoffice/internal/forms"
	"insurance-backoffice/internal/remote"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler wires the remote service clients, the form validators and the
// logger behind the view endpoints.
type Handler struct {
	log       *zap.Logger
	forms     *forms.Validator
	customers remote.CustomerService
	policies  remote.PolicyService
	claims    remote.ClaimService
	auth      remote.AuthService
}

// New creates a new Handler instance.
func New(log *zap.Logger, f *forms.Validator, customers remote.CustomerService, policies remote.PolicyService, claims remote.ClaimService, auth remote.AuthService) *Handler {
	return &Handler{
		log:       log,
		forms:     f,
		customers: customers,
		policies:  policies,
		claims:    claims,
		auth:      auth,
	}
}

// Healthz is a simple health check endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, map[string]string{"error": msg})
}

// respondFieldErrors blocks a submission with the per-field messages.
func respondFieldErrors(w http.ResponseWriter, fields map[string]string) {
	respond(w, http.StatusUnprocessableEntity, map[string]any{"errors": fields})
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// remoteFailure converts a service error into the view's error state: an
// explicit not-found with a way back to the list, or a page-level banner
// message. Prior state is never touched; nothing is retried.
func (h *Handler) remoteFailure(w http.ResponseWriter, err error, entity, back, fallback string) {
	if apperror.IsNotFound(err) {
		respond(w, http.StatusNotFound, map[string]string{
			"error": entity + " not found",
			"back":  back,
		})
		return
	}
	h.log.Error("remote call failed", zap.Error(err))
	respondError(w, http.StatusBadGateway, apperror.RemoteMessage(err, fallback))
}
