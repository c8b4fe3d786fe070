package quote

import "time"

type Quote struct {
	Number    string
	CreatedAt time.Time
	Client    Client
	Lines     []Line

	DiscountPercent float64
	Subtotal        float64
	DiscountAmount  float64
	Total           float64

	ValidityTerm  string
	PaymentMethod string
}

type Client struct {
	Name     string
	Phone    string
	Document string
	Address  string
}

type Line struct {
	Product   string
	Unit      string
	Qty       int
	UnitPrice float64
	LineTotal float64
}

// Selection is one (product, quantity) pair picked by the user.
type Selection struct {
	Product string
	Qty     int
}
