package handler

import (
	"net/http"

	"insurance-backoffice/internal/model"
	"insurance-backoffice/internal/view"

	"golang.org/x/sync/errgroup"
)

const recentCount = 5

// Dashboard aggregates the three collections. They are independent, so all
// three load concurrently and join in memory.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var (
		customers []model.Customer
		policies  []model.PolicyWithCustomer
		claims    []model.Claim
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		customers, err = h.customers.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		policies, err = h.policies.ListWithCustomers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		claims, err = h.claims.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.remoteFailure(w, err, "Dashboard", "/dashboard", "Failed to load dashboard data. Please try again.")
		return
	}

	var pending int
	for _, c := range claims {
		if c.Status == model.StatusPending {
			pending++
		}
	}

	var totalCoverage float64
	for _, p := range policies {
		totalCoverage += p.Policy.CoverageAmount
	}

	recentCustomers := make([]customerItem, 0, recentCount)
	for _, c := range firstN(customers, recentCount) {
		recentCustomers = append(recentCustomers, newCustomerItem(c))
	}
	recentPolicies := make([]policyRow, 0, recentCount)
	for _, p := range firstN(policies, recentCount) {
		recentPolicies = append(recentPolicies, newPolicyRow(p))
	}
	recentClaims := make([]claimItem, 0, recentCount)
	for _, c := range firstN(claims, recentCount) {
		recentClaims = append(recentClaims, newClaimItem(c))
	}

	respond(w, http.StatusOK, map[string]any{
		"stats": map[string]any{
			"totalCustomers":     len(customers),
			"totalPolicies":      len(policies),
			"totalClaims":        len(claims),
			"pendingClaims":      pending,
			"totalCoverage":      totalCoverage,
			"totalCoverageLabel": view.FormatCurrency(totalCoverage),
		},
		"recentCustomers": recentCustomers,
		"recentPolicies":  recentPolicies,
		"recentClaims":    recentClaims,
	})
}

func firstN[T any](list []T, n int) []T {
	if len(list) < n {
		return list
	}
	return list[:n]
}
