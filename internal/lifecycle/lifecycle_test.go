package lifecycle

import (
	"testing"

	"insurance-backoffice/internal/model"

	"github.com/stretchr/testify/assert"
)

func pendingClaim(amount float64) model.Claim {
	return model.Claim{
		ID:            7,
		Date:          "2024-03-10",
		Description:   "Rear-end collision on I-40",
		ClaimedAmount: amount,
		Status:        model.StatusPending,
		PolicyID:      3,
	}
}

func TestApprove(t *testing.T) {
	tests := []struct {
		name      string
		status    model.ClaimStatus
		want      model.ClaimStatus
		expectErr error
	}{
		{name: "pending claim approves", status: model.StatusPending, want: model.StatusApproved},
		{name: "approved claim cannot approve again", status: model.StatusApproved, expectErr: ErrInvalidTransition},
		{name: "rejected claim cannot approve", status: model.StatusRejected, expectErr: ErrInvalidTransition},
		{name: "settled claim cannot approve", status: model.StatusSettled, expectErr: ErrInvalidTransition},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := pendingClaim(5000)
			c.Status = tc.status
			got, err := Approve(c)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReject(t *testing.T) {
	c := pendingClaim(5000)

	got, err := Reject(c)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusRejected, got)

	c.Status = model.StatusApproved
	_, err = Reject(c)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name      string
		status    model.ClaimStatus
		amount    float64
		expectErr error
	}{
		{name: "settle at claimed amount", status: model.StatusApproved, amount: 5000},
		{name: "settle below claimed amount", status: model.StatusApproved, amount: 1250.50},
		{name: "settle above claimed amount", status: model.StatusApproved, amount: 6000, expectErr: ErrSettlementAmount},
		{name: "settle zero amount", status: model.StatusApproved, amount: 0, expectErr: ErrSettlementAmount},
		{name: "settle negative amount", status: model.StatusApproved, amount: -10, expectErr: ErrSettlementAmount},
		{name: "settle pending claim", status: model.StatusPending, amount: 100, expectErr: ErrInvalidTransition},
		{name: "settle rejected claim", status: model.StatusRejected, amount: 100, expectErr: ErrInvalidTransition},
		{name: "settle settled claim", status: model.StatusSettled, amount: 100, expectErr: ErrInvalidTransition},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := pendingClaim(5000)
			c.Status = tc.status
			got, err := Settle(c, tc.amount)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, model.StatusSettled, got)
		})
	}
}

func TestSettleGuardBeforeAmount(t *testing.T) {
	// A bad amount on a claim that cannot settle reports the transition
	// problem, not the amount problem.
	c := pendingClaim(5000)
	_, err := Settle(c, 6000)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAvailable(t *testing.T) {
	assert.Equal(t, []Action{ActionApprove, ActionReject}, Available(model.StatusPending))
	assert.Equal(t, []Action{ActionSettle}, Available(model.StatusApproved))
	assert.Empty(t, Available(model.StatusRejected))
	assert.Empty(t, Available(model.StatusSettled))
}

func TestTerminal(t *testing.T) {
	assert.False(t, Terminal(model.StatusPending))
	assert.False(t, Terminal(model.StatusApproved))
	assert.True(t, Terminal(model.StatusRejected))
	assert.True(t, Terminal(model.StatusSettled))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(model.StatusPending, model.StatusApproved))
	assert.True(t, CanTransition(model.StatusPending, model.StatusRejected))
	assert.True(t, CanTransition(model.StatusApproved, model.StatusSettled))
	assert.False(t, CanTransition(model.StatusPending, model.StatusSettled))
	assert.False(t, CanTransition(model.StatusApproved, model.StatusRejected))
	assert.False(t, CanTransition(model.StatusRejected, model.StatusPending))
	assert.False(t, CanTransition(model.StatusSettled, model.StatusApproved))
}
