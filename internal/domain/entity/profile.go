package entity

// Profile holds the shipping and contact data for a user, one-to-one with the
// account. Checkout copies the address fields into the order at checkout time.
type Profile struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}
