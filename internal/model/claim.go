package model

// ClaimStatus enumerates the claim lifecycle states. REJECTED and SETTLED are
// terminal.
type ClaimStatus string

const (
	StatusPending  ClaimStatus = "PENDING"
	StatusApproved ClaimStatus = "APPROVED"
	StatusRejected ClaimStatus = "REJECTED"
	StatusSettled  ClaimStatus = "SETTLED"
)

// Valid reports whether s is one of the known lifecycle states.
func (s ClaimStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusSettled:
		return true
	}
	return false
}

// Claim is a loss report filed against exactly one policy. SettledAmount is
// present only once the claim reaches SETTLED.
type Claim struct {
	ID            int64       `json:"id,omitempty"`
	Date          string      `json:"date"`
	Description   string      `json:"description"`
	ClaimedAmount float64     `json:"claimedAmount"`
	SettledAmount *float64    `json:"settledAmount,omitempty"`
	Status        ClaimStatus `json:"status"`
	PolicyID      int64       `json:"policyId"`
}

// ClaimWithPolicy carries the joined fields the claim list renders: the owning
// policy's type and the name of the customer behind it.
type ClaimWithPolicy struct {
	Claim
	CustomerName string     `json:"customerName,omitempty"`
	PolicyType   PolicyType `json:"policyType,omitempty"`
}

// ClaimInput is the payload accepted by the claim create form.
type ClaimInput struct {
	Date          string  `json:"date" validate:"required,dateshape"`
	Description   string  `json:"description" validate:"required,notblank"`
	ClaimedAmount float64 `json:"claimedAmount" validate:"required,gt=0"`
	PolicyID      int64   `json:"policyId" validate:"required,gt=0"`
}

// Claim builds the record sent to the claim service. New claims always start
// out PENDING.
func (in ClaimInput) Claim() Claim {
	return Claim{
		Date:          in.Date,
		Description:   in.Description,
		ClaimedAmount: in.ClaimedAmount,
		Status:        StatusPending,
		PolicyID:      in.PolicyID,
	}
}

// ClaimUpdate is the payload accepted by the claim edit form. Unlike the
// guarded approve/reject/settle actions it may set any status directly.
type ClaimUpdate struct {
	Date          string      `json:"date" validate:"required,dateshape"`
	Description   string      `json:"description" validate:"required,notblank"`
	ClaimedAmount float64     `json:"claimedAmount" validate:"required,gt=0"`
	SettledAmount *float64    `json:"settledAmount,omitempty"`
	Status        ClaimStatus `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED SETTLED"`
	PolicyID      int64       `json:"policyId" validate:"required,gt=0"`
}

// StatusUpdate is the body of the guarded status transition call.
type StatusUpdate struct {
	Status        ClaimStatus `json:"status"`
	SettledAmount *float64    `json:"settledAmount,omitempty"`
}
