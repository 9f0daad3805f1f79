package handler

import (
	"net/http"

	"insurance-backoffice/internal/model"
	"insurance-backoffice/internal/view"
)

// policyItem is a policy row decorated with its type style and coverage label.
type policyItem struct {
	model.Policy
	TypeStyle     view.Style `json:"typeStyle"`
	CoverageLabel string     `json:"coverageLabel"`
}

func newPolicyItem(p model.Policy) policyItem {
	return policyItem{
		Policy:        p,
		TypeStyle:     view.PolicyStyle(p.Type),
		CoverageLabel: view.FormatCurrency(p.CoverageAmount),
	}
}

// policyRow is a joined list row carrying the owning customer.
type policyRow struct {
	policyItem
	CustomerName     string `json:"customerName"`
	CustomerInitials string `json:"customerInitials"`
}

func newPolicyRow(p model.PolicyWithCustomer) policyRow {
	return policyRow{
		policyItem:       newPolicyItem(p.Policy),
		CustomerName:     p.Customer.FirstName + " " + p.Customer.LastName,
		CustomerInitials: view.Initials(p.Customer.FirstName, p.Customer.LastName),
	}
}

// ListPolicies renders the policy list joined with customers, filtered by the
// optional search term and type.
func (h *Handler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.policies.ListWithCustomers(r.Context())
	if err != nil {
		h.remoteFailure(w, err, "Policies", "/policies", "Failed to load policies. Please try again.")
		return
	}

	q := r.URL.Query()
	filtered := view.FilterPolicies(policies, q.Get("search"), q.Get("type"))
	rows := make([]policyRow, 0, len(filtered))
	for _, p := range filtered {
		rows = append(rows, newPolicyRow(p))
	}
	respond(w, http.StatusOK, map[string]any{"policies": rows})
}

// GetPolicy renders the policy detail view with its customer and claims. The
// claims fetch follows the policy fetch sequentially.
func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid policy id")
		return
	}

	policy, err := h.policies.GetWithCustomer(r.Context(), id)
	if err != nil {
		h.remoteFailure(w, err, "Policy", "/policies", "Failed to load policy details. Please try again.")
		return
	}

	claims, err := h.claims.ListByPolicy(r.Context(), id)
	if err != nil {
		h.remoteFailure(w, err, "Policy", "/policies", "Failed to load policy details. Please try again.")
		return
	}

	items := make([]claimItem, 0, len(claims))
	for _, c := range claims {
		items = append(items, newClaimItem(c))
	}
	respond(w, http.StatusOK, map[string]any{
		"policy":   newPolicyItem(policy.Policy),
		"customer": newCustomerItem(policy.Customer),
		"claims":   items,
	})
}

// CreatePolicy validates the policy form and forwards it. Validation failures
// block the submission before any remote call.
func (h *Handler) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	var in model.PolicyInput
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if errs := h.forms.Policy(in); len(errs) > 0 {
		respondFieldErrors(w, errs)
		return
	}

	created, err := h.policies.Create(r.Context(), in.Policy())
	if err != nil {
		h.remoteFailure(w, err, "Policy", "/policies", "Failed to save policy. Please try again.")
		return
	}
	respond(w, http.StatusCreated, newPolicyItem(created))
}

// UpdatePolicy validates and forwards the edit form. The customer reference
// is immutable in the form; the service ignores attempts to change it.
func (h *Handler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid policy id")
		return
	}

	var in model.PolicyInput
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if errs := h.forms.Policy(in); len(errs) > 0 {
		respondFieldErrors(w, errs)
		return
	}

	updated, err := h.policies.Update(r.Context(), id, in.Policy())
	if err != nil {
		h.remoteFailure(w, err, "Policy", "/policies", "Failed to save policy. Please try again.")
		return
	}
	respond(w, http.StatusOK, newPolicyItem(updated))
}

// DeletePolicy forwards the delete independently of the policy's claims.
func (h *Handler) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid policy id")
		return
	}

	if err := h.policies.Delete(r.Context(), id); err != nil {
		h.remoteFailure(w, err, "Policy", "/policies", "Failed to delete policy. Please try again.")
		return
	}
	respond(w, http.StatusOK, map[string]string{"back": "/policies"})
}
