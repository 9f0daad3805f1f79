package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"insurance-backoffice/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestListPolicies(t *testing.T) {
	h, f := newTestHandler(t)
	f.policies.policies = append(f.policies.policies, model.PolicyWithCustomer{
		Policy:   model.Policy{ID: 11, Type: model.PolicyHome, CoverageAmount: 150000, CustomerID: 4},
		Customer: model.Customer{ID: 4, FirstName: "Bruno", LastName: "Klein"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/policies", nil)
	w := httptest.NewRecorder()
	h.ListPolicies(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	rows := decodeBody(t, w)["policies"].([]any)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Amina Haddad", rows[0].(map[string]any)["customerName"])

	// Type filter.
	req = httptest.NewRequest(http.MethodGet, "/api/policies?type=HOME", nil)
	w = httptest.NewRecorder()
	h.ListPolicies(w, req)
	rows = decodeBody(t, w)["policies"].([]any)
	assert.Len(t, rows, 1)
	assert.Equal(t, "$150,000", rows[0].(map[string]any)["coverageLabel"])

	// Search over the customer name.
	req = httptest.NewRequest(http.MethodGet, "/api/policies?search=bruno", nil)
	w = httptest.NewRecorder()
	h.ListPolicies(w, req)
	assert.Len(t, decodeBody(t, w)["policies"].([]any), 1)
}

func TestGetPolicyWithCustomerAndClaims(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withID(httptest.NewRequest(http.MethodGet, "/api/policies/10", nil), "10")
	w := httptest.NewRecorder()
	h.GetPolicy(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "AUTO", body["policy"].(map[string]any)["type"])
	assert.Equal(t, "Amina", body["customer"].(map[string]any)["firstName"])
	assert.Len(t, body["claims"].([]any), 1)
}

func TestGetPolicyNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withID(httptest.NewRequest(http.MethodGet, "/api/policies/99", nil), "99")
	w := httptest.NewRecorder()
	h.GetPolicy(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Policy not found", body["error"])
	assert.Equal(t, "/policies", body["back"])
}

func TestCreatePolicy(t *testing.T) {
	h, f := newTestHandler(t)

	in := model.PolicyInput{
		Type: model.PolicyHealth, StartDate: "2024-06-01", EndDate: "2025-05-31",
		CoverageAmount: 80000, CustomerID: 3,
	}
	req := httptest.NewRequest(http.MethodPost, "/api/policies", jsonBody(t, in))
	w := httptest.NewRecorder()
	h.CreatePolicy(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, f.policies.created, 1)
	assert.Equal(t, model.PolicyHealth, f.policies.created[0].Type)
}

func TestCreatePolicyEndDateBeforeStartDate(t *testing.T) {
	h, f := newTestHandler(t)

	// startDate 2024-01-01, endDate 2023-12-31: validation error on endDate,
	// no service call made.
	in := model.PolicyInput{
		Type: model.PolicyAuto, StartDate: "2024-01-01", EndDate: "2023-12-31",
		CoverageAmount: 25000, CustomerID: 3,
	}
	req := httptest.NewRequest(http.MethodPost, "/api/policies", jsonBody(t, in))
	w := httptest.NewRecorder()
	h.CreatePolicy(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, f.policies.created)
	errs := decodeBody(t, w)["errors"].(map[string]any)
	assert.Equal(t, "End date must be after start date", errs["endDate"])
}

func TestUpdatePolicy(t *testing.T) {
	h, f := newTestHandler(t)

	in := model.PolicyInput{
		Type: model.PolicyAuto, StartDate: "2024-01-01", EndDate: "2025-12-31",
		CoverageAmount: 30000, CustomerID: 3,
	}
	req := withID(httptest.NewRequest(http.MethodPut, "/api/policies/10", jsonBody(t, in)), "10")
	w := httptest.NewRecorder()
	h.UpdatePolicy(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30000.0, f.policies.updated[10].CoverageAmount)
}

func TestDeletePolicy(t *testing.T) {
	h, f := newTestHandler(t)

	req := withID(httptest.NewRequest(http.MethodDelete, "/api/policies/10", nil), "10")
	w := httptest.NewRecorder()
	h.DeletePolicy(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{10}, f.policies.deleted)
	assert.Equal(t, "/policies", decodeBody(t, w)["back"])
}
