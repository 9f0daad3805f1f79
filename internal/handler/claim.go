package handler

import (
	"errors"
	"fmt"
	"net/http"

	"insurance-backoffice/internal/lifecycle"
	"insurance-backoffice/internal/model"
	"insurance-backoffice/internal/view"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// claimItem is a claim decorated with its status style, amount labels and the
// lifecycle actions currently available.
type claimItem struct {
	model.Claim
	StatusStyle      view.Style         `json:"statusStyle"`
	ClaimedLabel     string             `json:"claimedLabel"`
	SettledLabel     string             `json:"settledLabel,omitempty"`
	AvailableActions []lifecycle.Action `json:"availableActions"`
}

func newClaimItem(c model.Claim) claimItem {
	item := claimItem{
		Claim:            c,
		StatusStyle:      view.StatusStyle(c.Status),
		ClaimedLabel:     view.FormatCurrency(c.ClaimedAmount),
		AvailableActions: lifecycle.Available(c.Status),
	}
	if c.SettledAmount != nil {
		item.SettledLabel = view.FormatCurrency(*c.SettledAmount)
	}
	return item
}

// claimRow is a joined list row carrying the owning policy's type and
// customer name.
type claimRow struct {
	claimItem
	CustomerName string           `json:"customerName,omitempty"`
	PolicyType   model.PolicyType `json:"policyType,omitempty"`
}

// ListClaims renders the claim list. The claim collection and the
// policy-with-customer collection are independent, so they load concurrently
// and join in memory.
func (h *Handler) ListClaims(w http.ResponseWriter, r *http.Request) {
	var (
		claims   []model.Claim
		policies []model.PolicyWithCustomer
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		claims, err = h.claims.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		policies, err = h.policies.ListWithCustomers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.remoteFailure(w, err, "Claims", "/claims", "Failed to load claims. Please try again.")
		return
	}

	byPolicy := make(map[int64]model.PolicyWithCustomer, len(policies))
	for _, p := range policies {
		byPolicy[p.Policy.ID] = p
	}

	joined := make([]model.ClaimWithPolicy, 0, len(claims))
	for _, c := range claims {
		row := model.ClaimWithPolicy{Claim: c}
		if p, ok := byPolicy[c.PolicyID]; ok {
			row.CustomerName = p.Customer.FirstName + " " + p.Customer.LastName
			row.PolicyType = p.Policy.Type
		}
		joined = append(joined, row)
	}

	q := r.URL.Query()
	filtered := view.FilterClaims(joined, q.Get("search"), q.Get("status"))
	rows := make([]claimRow, 0, len(filtered))
	for _, c := range filtered {
		rows = append(rows, claimRow{
			claimItem:    newClaimItem(c.Claim),
			CustomerName: c.CustomerName,
			PolicyType:   c.PolicyType,
		})
	}
	respond(w, http.StatusOK, map[string]any{"claims": rows})
}

// GetClaim renders the claim detail view. The policy join is a dependent
// fetch and follows the claim sequentially.
func (h *Handler) GetClaim(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	claim, err := h.claims.Get(r.Context(), id)
	if err != nil {
		h.remoteFailure(w, err, "Claim", "/claims", "Failed to load claim details. Please try again.")
		return
	}

	policy, err := h.policies.GetWithCustomer(r.Context(), claim.PolicyID)
	if err != nil {
		h.remoteFailure(w, err, "Claim", "/claims", "Failed to load claim details. Please try again.")
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"claim":    newClaimItem(claim),
		"policy":   newPolicyItem(policy.Policy),
		"customer": newCustomerItem(policy.Customer),
	})
}

// CreateClaim validates the claim form and forwards it. New claims start
// PENDING.
func (h *Handler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	var in model.ClaimInput
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if errs := h.forms.Claim(in); len(errs) > 0 {
		respondFieldErrors(w, errs)
		return
	}

	created, err := h.claims.Create(r.Context(), in.Claim())
	if err != nil {
		h.remoteFailure(w, err, "Claim", "/claims", "Failed to save claim. Please try again.")
		return
	}
	respond(w, http.StatusCreated, newClaimItem(created))
}

// UpdateClaim is the edit form: an administrative override that may set any
// status directly. Writes that bypass the lifecycle guards are logged so the
// override stays visible.
func (h *Handler) UpdateClaim(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	var in model.ClaimUpdate
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if errs := h.forms.ClaimUpdate(in); len(errs) > 0 {
		respondFieldErrors(w, errs)
		return
	}

	current, err := h.claims.Get(r.Context(), id)
	if err != nil {
		h.remoteFailure(w, err, "Claim", "/claims", "Failed to save claim. Please try again.")
		return
	}

	if in.Status != current.Status && !lifecycle.CanTransition(current.Status, in.Status) {
		h.log.Warn("claim status override bypasses lifecycle guards",
			zap.Int64("claim_id", id),
			zap.String("from", string(current.Status)),
			zap.String("to", string(in.Status)))
	}

	updated, err := h.claims.Update(r.Context(), id, model.Claim{
		ID:            id,
		Date:          in.Date,
		Description:   in.Description,
		ClaimedAmount: in.ClaimedAmount,
		SettledAmount: in.SettledAmount,
		Status:        in.Status,
		PolicyID:      in.PolicyID,
	})
	if err != nil {
		h.remoteFailure(w, err, "Claim", "/claims", "Failed to save claim. Please try again.")
		return
	}
	respond(w, http.StatusOK, newClaimItem(updated))
}

// DeleteClaim removes the claim and points the caller back at the owning
// policy.
func (h *Handler) DeleteClaim(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	claim, err := h.claims.Get(r.Context(), id)
	if err != nil {
		h.remoteFailure(w, err, "Claim", "/claims", "Failed to delete claim. Please try again.")
		return
	}

	if err := h.claims.Delete(r.Context(), id); err != nil {
		h.remoteFailure(w, err, "Claim", "/claims", "Failed to delete claim. Please try again.")
		return
	}
	respond(w, http.StatusOK, map[string]string{"back": fmt.Sprintf("/policies/%d", claim.PolicyID)})
}

// ApproveClaim applies the guarded PENDING → APPROVED transition.
func (h *Handler) ApproveClaim(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(c model.Claim) (model.ClaimStatus, error) {
		return lifecycle.Approve(c)
	}, nil, "Failed to approve claim. Please try again.")
}

// RejectClaim applies the guarded PENDING → REJECTED transition.
func (h *Handler) RejectClaim(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(c model.Claim) (model.ClaimStatus, error) {
		return lifecycle.Reject(c)
	}, nil, "Failed to reject claim. Please try again.")
}

type settleRequest struct {
	SettledAmount float64 `json:"settledAmount"`
}

// SettleClaim applies the guarded APPROVED → SETTLED transition with its
// amount constraint.
func (h *Handler) SettleClaim(w http.ResponseWriter, r *http.Request) {
	var in settleRequest
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	h.transition(w, r, func(c model.Claim) (model.ClaimStatus, error) {
		return lifecycle.Settle(c, in.SettledAmount)
	}, &in.SettledAmount, "Failed to settle claim. Please try again.")
}

// transition re-reads the claim, applies the guard and forwards the status
// change only when it passes. The status is never changed optimistically: the
// response reflects what the claim service echoed back.
func (h *Handler) transition(w http.ResponseWriter, r *http.Request, guard func(model.Claim) (model.ClaimStatus, error), settledAmount *float64, fallback string) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	claim, err := h.claims.Get(r.Context(), id)
	if err != nil {
		h.remoteFailure(w, err, "Claim", "/claims", fallback)
		return
	}

	target, err := guard(claim)
	if err != nil {
		if errors.Is(err, lifecycle.ErrSettlementAmount) {
			respondFieldErrors(w, map[string]string{"settledAmount": lifecycle.ErrSettlementAmount.Error()})
			return
		}
		respondError(w, http.StatusConflict, err.Error())
		return
	}

	var amount *float64
	if target == model.StatusSettled {
		amount = settledAmount
	}

	updated, err := h.claims.UpdateStatus(r.Context(), id, target, amount)
	if err != nil {
		h.remoteFailure(w, err, "Claim", "/claims", fallback)
		return
	}
	respond(w, http.StatusOK, newClaimItem(updated))
}
