// Package lifecycle implements the claim status state machine. The guarded
// transitions are PENDING → APPROVED, PENDING → REJECTED and
// APPROVED → SETTLED; REJECTED and SETTLED are terminal.
package lifecycle

import (
	"errors"
	"fmt"

	"insurance-backoffice/internal/model"
)

// Action is a guarded operation on a claim.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionSettle  Action = "settle"
)

var (
	// ErrInvalidTransition signals an action applied to a claim whose status
	// does not permit it.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrSettlementAmount signals a settle attempt whose amount is not in
	// (0, claimedAmount].
	ErrSettlementAmount = errors.New("settlement amount must be greater than 0 and at most the claimed amount")
)

// transitions maps each status to the actions permitted from it. Statuses
// absent from the map are terminal.
var transitions = map[model.ClaimStatus][]Action{
	model.StatusPending:  {ActionApprove, ActionReject},
	model.StatusApproved: {ActionSettle},
}

// targets maps each action to the status it produces.
var targets = map[Action]model.ClaimStatus{
	ActionApprove: model.StatusApproved,
	ActionReject:  model.StatusRejected,
	ActionSettle:  model.StatusSettled,
}

// Available returns the actions permitted for a claim in status s, in a
// stable order. Terminal statuses return nil.
func Available(s model.ClaimStatus) []Action {
	return transitions[s]
}

// Terminal reports whether no guarded action can move a claim out of s.
func Terminal(s model.ClaimStatus) bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether the guarded graph permits moving a claim from
// one status to another. The direct-edit path does not consult this; callers
// use it to flag out-of-band overrides.
func CanTransition(from, to model.ClaimStatus) bool {
	for _, a := range transitions[from] {
		if targets[a] == to {
			return true
		}
	}
	return false
}

// Approve validates the approve action against c and returns the resulting
// status. The claim itself is not mutated; the persistence service owns the
// write.
func Approve(c model.Claim) (model.ClaimStatus, error) {
	return apply(c, ActionApprove)
}

// Reject validates the reject action against c and returns the resulting
// status.
func Reject(c model.Claim) (model.ClaimStatus, error) {
	return apply(c, ActionReject)
}

// Settle validates the settle action and the settlement amount against c.
// The amount must satisfy 0 < amount <= c.ClaimedAmount.
func Settle(c model.Claim, amount float64) (model.ClaimStatus, error) {
	status, err := apply(c, ActionSettle)
	if err != nil {
		return "", err
	}
	if amount <= 0 || amount > c.ClaimedAmount {
		return "", ErrSettlementAmount
	}
	return status, nil
}

func apply(c model.Claim, action Action) (model.ClaimStatus, error) {
	for _, a := range transitions[c.Status] {
		if a == action {
			return targets[action], nil
		}
	}
	return "", fmt.Errorf("%s claim in status %s: %w", action, c.Status, ErrInvalidTransition)
}
