package model

// PolicyType enumerates the lines of insurance the agency writes.
type PolicyType string

const (
	PolicyAuto   PolicyType = "AUTO"
	PolicyHome   PolicyType = "HOME"
	PolicyHealth PolicyType = "HEALTH"
)

// DateLayout is the calendar date format used by the policy and claim services.
const DateLayout = "2006-01-02"

// Policy is an insurance contract owned by exactly one customer.
type Policy struct {
	ID             int64      `json:"id,omitempty"`
	Type           PolicyType `json:"type"`
	StartDate      string     `json:"startDate"`
	EndDate        string     `json:"endDate"`
	CoverageAmount float64    `json:"coverageAmount"`
	CustomerID     int64      `json:"customerId"`
}

// PolicyWithCustomer is the join shape returned by the policy service when the
// owning customer is requested alongside the policy.
type PolicyWithCustomer struct {
	Policy   Policy   `json:"policy"`
	Customer Customer `json:"customer"`
}

// PolicyInput is the payload accepted by the policy create/update form.
// CustomerID is immutable after creation; the form simply echoes it back.
type PolicyInput struct {
	Type           PolicyType `json:"type" validate:"required,oneof=AUTO HOME HEALTH"`
	StartDate      string     `json:"startDate" validate:"required,dateshape"`
	EndDate        string     `json:"endDate" validate:"required,dateshape"`
	CoverageAmount float64    `json:"coverageAmount" validate:"required,gt=0"`
	CustomerID     int64      `json:"customerId" validate:"required,gt=0"`
}

// Policy builds the record sent to the policy service.
func (in PolicyInput) Policy() Policy {
	return Policy{
		Type:           in.Type,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		CoverageAmount: in.CoverageAmount,
		CustomerID:     in.CustomerID,
	}
}
