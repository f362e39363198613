package models

// Address is embedded in the customer record.
type Address struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	ZipCode     string `json:"zipCode"`
}

// Customer is the stored customer record. IDs are uuid strings assigned on
// creation.
type Customer struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"not null" json:"firstName"`
	LastName  string  `gorm:"not null" json:"lastName"`
	Email     string  `gorm:"not null;uniqueIndex" json:"email"`
	Address   Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`
}

func (Customer) TableName() string { return "customers" }

// CustomerRequest creates or updates a customer. On update, blank fields
// leave the stored value untouched.
type CustomerRequest struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Address   *Address `json:"address"`
}

// CustomerResponse is the outward view of a customer.
type CustomerResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Address   Address `json:"address"`
}

// ToCustomer builds a stored customer from a request.
func (r CustomerRequest) ToCustomer() Customer {
	c := Customer{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
	return c
}

// ToResponse maps a stored customer outward.
func (c Customer) ToResponse() CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Address:   c.Address,
	}
}
