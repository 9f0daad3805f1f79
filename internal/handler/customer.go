package handler

import (
	"net/http"

	"insurance-backoffice/internal/model"
	"insurance-backoffice/internal/view"
)

// customerItem is a customer row decorated with its avatar label.
type customerItem struct {
	model.Customer
	Initials string `json:"initials"`
}

func newCustomerItem(c model.Customer) customerItem {
	return customerItem{Customer: c, Initials: view.Initials(c.FirstName, c.LastName)}
}

// ListCustomers renders the customer list, filtered by the optional search
// term. Filtering happens here, not in the customer service.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		h.remoteFailure(w, err, "Clients", "/customers", "Failed to load clients. Please try again.")
		return
	}

	filtered := view.FilterCustomers(customers, r.URL.Query().Get("search"))
	items := make([]customerItem, 0, len(filtered))
	for _, c := range filtered {
		items = append(items, newCustomerItem(c))
	}
	respond(w, http.StatusOK, map[string]any{"customers": items})
}

// GetCustomer renders the customer detail view together with the policies the
// customer owns. The dependent fetch is sequential: policies only load once
// the customer resolves.
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer, err := h.customers.Get(r.Context(), id)
	if err != nil {
		h.remoteFailure(w, err, "Client", "/customers", "Failed to load client details. Please try again.")
		return
	}

	policies, err := h.policies.ListByCustomer(r.Context(), id)
	if err != nil {
		h.remoteFailure(w, err, "Client", "/customers", "Failed to load client details. Please try again.")
		return
	}

	items := make([]policyItem, 0, len(policies))
	for _, p := range policies {
		items = append(items, newPolicyItem(p))
	}
	respond(w, http.StatusOK, map[string]any{
		"customer": newCustomerItem(customer),
		"policies": items,
	})
}

// CreateCustomer validates the customer form and forwards it. A non-empty
// error map blocks the submission; no remote call is made.
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var in model.CustomerInput
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if errs := h.forms.Customer(in); len(errs) > 0 {
		respondFieldErrors(w, errs)
		return
	}

	created, err := h.customers.Create(r.Context(), in.Customer())
	if err != nil {
		h.remoteFailure(w, err, "Client", "/customers", "Failed to save client. Please try again.")
		return
	}
	respond(w, http.StatusCreated, newCustomerItem(created))
}

// UpdateCustomer validates and forwards the edit form.
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var in model.CustomerInput
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if errs := h.forms.Customer(in); len(errs) > 0 {
		respondFieldErrors(w, errs)
		return
	}

	updated, err := h.customers.Update(r.Context(), id, in.Customer())
	if err != nil {
		h.remoteFailure(w, err, "Client", "/customers", "Failed to save client. Please try again.")
		return
	}
	respond(w, http.StatusOK, newCustomerItem(updated))
}

// DeleteCustomer forwards the delete as-is. Dependent policies are not
// checked; the persistence service owns referential integrity.
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := h.customers.Delete(r.Context(), id); err != nil {
		h.remoteFailure(w, err, "Client", "/customers", "Failed to delete client. Please try again.")
		return
	}
	respond(w, http.StatusOK, map[string]string{"back": "/customers"})
}
