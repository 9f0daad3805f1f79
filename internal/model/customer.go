// Package model defines the records exchanged with the remote insurance services.
package model

// Customer is a client of the agency. The id is assigned by the customer
// service on create.
type Customer struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// CustomerInput is the payload accepted by the customer create/update forms.
type CustomerInput struct {
	FirstName string `json:"firstName" validate:"required,notblank"`
	LastName  string `json:"lastName" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,emailshape"`
	Phone     string `json:"phone" validate:"required,notblank"`
	Address   string `json:"address" validate:"required,notblank"`
}

// Customer builds the record sent to the customer service.
func (in CustomerInput) Customer() Customer {
	return Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
	}
}
