package remote

import (
	"context"
	"fmt"
	"net/http"

	"insurance-backoffice/internal/model"

	"go.uber.org/zap"
)

// CustomerService is the customer persistence service's operation set.
type CustomerService interface {
	List(ctx context.Context) ([]model.Customer, error)
	Get(ctx context.Context, id int64) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, id int64, c model.Customer) (model.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// CustomerClient talks to the remote customer service.
type CustomerClient struct {
	client
}

// NewCustomerClient builds a client rooted at base.
func NewCustomerClient(base string, httpClient *http.Client, log *zap.Logger) *CustomerClient {
	return &CustomerClient{client: newClient("customer-service", base, httpClient, log)}
}

func (c *CustomerClient) List(ctx context.Context) ([]model.Customer, error) {
	var out []model.Customer
	err := c.do(ctx, "list", http.MethodGet, "/api/customers", nil, &out)
	return out, err
}

func (c *CustomerClient) Get(ctx context.Context, id int64) (model.Customer, error) {
	var out model.Customer
	err := c.do(ctx, "get", http.MethodGet, fmt.Sprintf("/api/customers/%d", id), nil, &out)
	return out, err
}

func (c *CustomerClient) Create(ctx context.Context, customer model.Customer) (model.Customer, error) {
	var out model.Customer
	err := c.do(ctx, "create", http.MethodPost, "/api/customers", customer, &out)
	return out, err
}

func (c *CustomerClient) Update(ctx context.Context, id int64, customer model.Customer) (model.Customer, error) {
	var out model.Customer
	err := c.do(ctx, "update", http.MethodPut, fmt.Sprintf("/api/customers/%d", id), customer, &out)
	return out, err
}

// Delete removes the customer without checking for dependent policies; the
// persistence service owns referential integrity.
func (c *CustomerClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, fmt.Sprintf("/api/customers/%d", id), nil, nil)
}
