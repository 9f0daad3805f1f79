package handler

import (
	"net/http"

	"insurance-backoffice/internal/apperror"
	"insurance-backoffice/internal/forms"
	"insurance-backoffice/internal/middleware"
	"insurance-backoffice/internal/model"
)

// Login exchanges credentials for a session issued by the auth service.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in model.Credentials
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if in.Username == "" || in.Password == "" {
		respondError(w, http.StatusBadRequest, "Please enter both username and password")
		return
	}

	session, err := h.auth.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		if apperror.IsNotFound(err) {
			respondError(w, http.StatusUnauthorized, "Failed to login. Please check your credentials.")
			return
		}
		respondError(w, http.StatusUnauthorized, apperror.RemoteMessage(err, "Failed to login. Please check your credentials."))
		return
	}
	respond(w, http.StatusOK, session)
}

// registerRequest embeds the wizard data plus the step being validated when
// the caller only wants a step check.
type registerRequest struct {
	forms.WizardData
	Step *int `json:"step,omitempty"`
}

// ValidateRegistrationStep runs a single wizard step's rules so the UI can
// gate forward navigation without a remote call.
func (h *Handler) ValidateRegistrationStep(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	step := forms.StepAccount
	if in.Step != nil {
		step = *in.Step
	}
	if errs := forms.ValidateStep(step, in.WizardData); len(errs) > 0 {
		respondFieldErrors(w, errs)
		return
	}
	respond(w, http.StatusOK, map[string]int{"nextStep": step + 1})
}

// Register runs every wizard step against the payload and forwards the
// registration to the auth service.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if errs := forms.ValidateRegistration(in.WizardData); len(errs) > 0 {
		respondFieldErrors(w, errs)
		return
	}

	msg, err := h.auth.Register(r.Context(), in.Username, in.Email, in.Password)
	if err != nil {
		respondError(w, http.StatusBadGateway, apperror.RemoteMessage(err, "Failed to register. Please try again."))
		return
	}
	if msg == "" {
		msg = "Registration successful! You can now login."
	}
	respond(w, http.StatusCreated, map[string]string{"message": msg})
}

// Logout ends the session. Tokens are stateless, so there is nothing to
// revoke server-side; the caller discards its copy.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the authenticated identity for the session gate.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	info, ok := middleware.SessionFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing or invalid Authorization header")
		return
	}
	respond(w, http.StatusOK, info)
}
