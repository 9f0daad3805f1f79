package remote

import (
	"context"
	"fmt"
	"net/http"

	"insurance-backoffice/internal/model"

	"go.uber.org/zap"
)

// ClaimService is the claim persistence service's operation set.
type ClaimService interface {
	List(ctx context.Context) ([]model.Claim, error)
	Get(ctx context.Context, id int64) (model.Claim, error)
	ListByPolicy(ctx context.Context, policyID int64) ([]model.Claim, error)
	Create(ctx context.Context, c model.Claim) (model.Claim, error)
	Update(ctx context.Context, id int64, c model.Claim) (model.Claim, error)
	UpdateStatus(ctx context.Context, id int64, status model.ClaimStatus, settledAmount *float64) (model.Claim, error)
	Delete(ctx context.Context, id int64) error
}

// ClaimClient talks to the remote claim service.
type ClaimClient struct {
	client
}

// NewClaimClient builds a client rooted at base.
func NewClaimClient(base string, httpClient *http.Client, log *zap.Logger) *ClaimClient {
	return &ClaimClient{client: newClient("claim-service", base, httpClient, log)}
}

func (c *ClaimClient) List(ctx context.Context) ([]model.Claim, error) {
	var out []model.Claim
	err := c.do(ctx, "list", http.MethodGet, "/api/claims", nil, &out)
	return out, err
}

func (c *ClaimClient) Get(ctx context.Context, id int64) (model.Claim, error) {
	var out model.Claim
	err := c.do(ctx, "get", http.MethodGet, fmt.Sprintf("/api/claims/%d", id), nil, &out)
	return out, err
}

func (c *ClaimClient) ListByPolicy(ctx context.Context, policyID int64) ([]model.Claim, error) {
	var out []model.Claim
	err := c.do(ctx, "list-by-policy", http.MethodGet, fmt.Sprintf("/api/claims/policy/%d", policyID), nil, &out)
	return out, err
}

func (c *ClaimClient) Create(ctx context.Context, claim model.Claim) (model.Claim, error) {
	var out model.Claim
	err := c.do(ctx, "create", http.MethodPost, "/api/claims", claim, &out)
	return out, err
}

func (c *ClaimClient) Update(ctx context.Context, id int64, claim model.Claim) (model.Claim, error) {
	var out model.Claim
	err := c.do(ctx, "update", http.MethodPut, fmt.Sprintf("/api/claims/%d", id), claim, &out)
	return out, err
}

// UpdateStatus applies a status transition; settledAmount accompanies the
// SETTLED status only.
func (c *ClaimClient) UpdateStatus(ctx context.Context, id int64, status model.ClaimStatus, settledAmount *float64) (model.Claim, error) {
	var out model.Claim
	body := model.StatusUpdate{Status: status, SettledAmount: settledAmount}
	err := c.do(ctx, "update-status", http.MethodPut, fmt.Sprintf("/api/claims/%d/status", id), body, &out)
	return out, err
}

func (c *ClaimClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, fmt.Sprintf("/api/claims/%d", id), nil, nil)
}
