package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusConfirmed = "confirmed"

// Order is an immutable snapshot taken at checkout time. ID and OrderDate are
// assigned by the order repository, never by the caller.
type Order struct {
	ID              int             `json:"id"`
	Items           []OrderItem     `json:"items"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	Status          string          `json:"status"`
	OrderDate       time.Time       `json:"orderDate"`
}

type OrderItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// PaymentMethod is collected as-is and never charged against a real
// processor; only presence of the fields is ever checked.
type PaymentMethod struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	NameOnCard string `json:"nameOnCard"`
}
