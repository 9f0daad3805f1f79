package remote

import (
	"context"
	"fmt"
	"net/http"

	"insurance-backoffice/internal/model"

	"go.uber.org/zap"
)

// PolicyService is the policy persistence service's operation set, including
// the customer joins.
type PolicyService interface {
	List(ctx context.Context) ([]model.Policy, error)
	ListWithCustomers(ctx context.Context) ([]model.PolicyWithCustomer, error)
	Get(ctx context.Context, id int64) (model.Policy, error)
	GetWithCustomer(ctx context.Context, id int64) (model.PolicyWithCustomer, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Policy, error)
	Create(ctx context.Context, p model.Policy) (model.Policy, error)
	Update(ctx context.Context, id int64, p model.Policy) (model.Policy, error)
	Delete(ctx context.Context, id int64) error
}

// PolicyClient talks to the remote policy service.
type PolicyClient struct {
	client
}

// NewPolicyClient builds a client rooted at base.
func NewPolicyClient(base string, httpClient *http.Client, log *zap.Logger) *PolicyClient {
	return &PolicyClient{client: newClient("policy-service", base, httpClient, log)}
}

func (c *PolicyClient) List(ctx context.Context) ([]model.Policy, error) {
	var out []model.Policy
	err := c.do(ctx, "list", http.MethodGet, "/api/policies", nil, &out)
	return out, err
}

func (c *PolicyClient) ListWithCustomers(ctx context.Context) ([]model.PolicyWithCustomer, error) {
	var out []model.PolicyWithCustomer
	err := c.do(ctx, "list-with-customers", http.MethodGet, "/api/policies/with-customers", nil, &out)
	return out, err
}

func (c *PolicyClient) Get(ctx context.Context, id int64) (model.Policy, error) {
	var out model.Policy
	err := c.do(ctx, "get", http.MethodGet, fmt.Sprintf("/api/policies/%d", id), nil, &out)
	return out, err
}

func (c *PolicyClient) GetWithCustomer(ctx context.Context, id int64) (model.PolicyWithCustomer, error) {
	var out model.PolicyWithCustomer
	err := c.do(ctx, "get-with-customer", http.MethodGet, fmt.Sprintf("/api/policies/%d/with-customer", id), nil, &out)
	return out, err
}

func (c *PolicyClient) ListByCustomer(ctx context.Context, customerID int64) ([]model.Policy, error) {
	var out []model.Policy
	err := c.do(ctx, "list-by-customer", http.MethodGet, fmt.Sprintf("/api/policies/customer/%d", customerID), nil, &out)
	return out, err
}

func (c *PolicyClient) Create(ctx context.Context, p model.Policy) (model.Policy, error) {
	var out model.Policy
	err := c.do(ctx, "create", http.MethodPost, "/api/policies", p, &out)
	return out, err
}

func (c *PolicyClient) Update(ctx context.Context, id int64, p model.Policy) (model.Policy, error) {
	var out model.Policy
	err := c.do(ctx, "update", http.MethodPut, fmt.Sprintf("/api/policies/%d", id), p, &out)
	return out, err
}

// Delete removes the policy independently of its claims.
func (c *PolicyClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, fmt.Sprintf("/api/policies/%d", id), nil, nil)
}
