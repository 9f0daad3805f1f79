package handler

import (
	"context"
	"net/http"

	"insurance-backoffice/internal/apperror"
	"insurance-backoffice/internal/model"

	"github.com/go-chi/chi/v5"
)

// errRemoteBoom stands in for a generic remote failure.
var errRemoteBoom = &apperror.RemoteError{Service: "test", Op: "op", Status: http.StatusInternalServerError, Message: "boom"}

func notFoundErr(service, op string) error {
	return &apperror.RemoteError{Service: service, Op: op, Status: http.StatusNotFound, Message: "not found"}
}

type mockCustomers struct {
	customers []model.Customer
	err       error

	created []model.Customer
	updated map[int64]model.Customer
	deleted []int64
}

func (m *mockCustomers) List(context.Context) ([]model.Customer, error) {
	return m.customers, m.err
}

func (m *mockCustomers) Get(_ context.Context, id int64) (model.Customer, error) {
	if m.err != nil {
		return model.Customer{}, m.err
	}
	for _, c := range m.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Customer{}, notFoundErr("customer-service", "get")
}

func (m *mockCustomers) Create(_ context.Context, c model.Customer) (model.Customer, error) {
	if m.err != nil {
		return model.Customer{}, m.err
	}
	c.ID = int64(len(m.customers) + 1)
	m.created = append(m.created, c)
	return c, nil
}

func (m *mockCustomers) Update(_ context.Context, id int64, c model.Customer) (model.Customer, error) {
	if m.err != nil {
		return model.Customer{}, m.err
	}
	if m.updated == nil {
		m.updated = map[int64]model.Customer{}
	}
	c.ID = id
	m.updated[id] = c
	return c, nil
}

func (m *mockCustomers) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockPolicies struct {
	policies []model.PolicyWithCustomer
	err      error

	created []model.Policy
	updated map[int64]model.Policy
	deleted []int64
}

func (m *mockPolicies) List(context.Context) ([]model.Policy, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.Policy, 0, len(m.policies))
	for _, p := range m.policies {
		out = append(out, p.Policy)
	}
	return out, nil
}

func (m *mockPolicies) ListWithCustomers(context.Context) ([]model.PolicyWithCustomer, error) {
	return m.policies, m.err
}

func (m *mockPolicies) Get(_ context.Context, id int64) (model.Policy, error) {
	p, err := m.GetWithCustomer(nil, id) //nolint:staticcheck
	return p.Policy, err
}

func (m *mockPolicies) GetWithCustomer(_ context.Context, id int64) (model.PolicyWithCustomer, error) {
	if m.err != nil {
		return model.PolicyWithCustomer{}, m.err
	}
	for _, p := range m.policies {
		if p.Policy.ID == id {
			return p, nil
		}
	}
	return model.PolicyWithCustomer{}, notFoundErr("policy-service", "get-with-customer")
}

func (m *mockPolicies) ListByCustomer(_ context.Context, customerID int64) ([]model.Policy, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Policy
	for _, p := range m.policies {
		if p.Policy.CustomerID == customerID {
			out = append(out, p.Policy)
		}
	}
	return out, nil
}

func (m *mockPolicies) Create(_ context.Context, p model.Policy) (model.Policy, error) {
	if m.err != nil {
		return model.Policy{}, m.err
	}
	p.ID = int64(len(m.policies) + 10)
	m.created = append(m.created, p)
	return p, nil
}

func (m *mockPolicies) Update(_ context.Context, id int64, p model.Policy) (model.Policy, error) {
	if m.err != nil {
		return model.Policy{}, m.err
	}
	if m.updated == nil {
		m.updated = map[int64]model.Policy{}
	}
	p.ID = id
	m.updated[id] = p
	return p, nil
}

func (m *mockPolicies) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type statusCall struct {
	ID            int64
	Status        model.ClaimStatus
	SettledAmount *float64
}

type mockClaims struct {
	claims []model.Claim
	err    error

	created     []model.Claim
	updated     map[int64]model.Claim
	deleted     []int64
	statusCalls []statusCall
}

func (m *mockClaims) List(context.Context) ([]model.Claim, error) {
	return m.claims, m.err
}

func (m *mockClaims) Get(_ context.Context, id int64) (model.Claim, error) {
	if m.err != nil {
		return model.Claim{}, m.err
	}
	for _, c := range m.claims {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Claim{}, notFoundErr("claim-service", "get")
}

func (m *mockClaims) ListByPolicy(_ context.Context, policyID int64) ([]model.Claim, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Claim
	for _, c := range m.claims {
		if c.PolicyID == policyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockClaims) Create(_ context.Context, c model.Claim) (model.Claim, error) {
	if m.err != nil {
		return model.Claim{}, m.err
	}
	c.ID = int64(len(m.claims) + 100)
	m.created = append(m.created, c)
	return c, nil
}

func (m *mockClaims) Update(_ context.Context, id int64, c model.Claim) (model.Claim, error) {
	if m.err != nil {
		return model.Claim{}, m.err
	}
	if m.updated == nil {
		m.updated = map[int64]model.Claim{}
	}
	c.ID = id
	m.updated[id] = c
	return c, nil
}

func (m *mockClaims) UpdateStatus(_ context.Context, id int64, status model.ClaimStatus, settledAmount *float64) (model.Claim, error) {
	if m.err != nil {
		return model.Claim{}, m.err
	}
	m.statusCalls = append(m.statusCalls, statusCall{ID: id, Status: status, SettledAmount: settledAmount})
	claim, err := m.Get(nil, id) //nolint:staticcheck
	if err != nil {
		return model.Claim{}, err
	}
	claim.Status = status
	claim.SettledAmount = settledAmount
	return claim, nil
}

func (m *mockClaims) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockAuth struct {
	session model.Session
	message string
	err     error

	logins    []string
	registers []string
}

func (m *mockAuth) Login(_ context.Context, username, _ string) (model.Session, error) {
	m.logins = append(m.logins, username)
	return m.session, m.err
}

func (m *mockAuth) Register(_ context.Context, username, _, _ string) (string, error) {
	m.registers = append(m.registers, username)
	return m.message, m.err
}

// withID attaches a chi route parameter to the request.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
