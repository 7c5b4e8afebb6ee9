package models

import "time"

// Billing statuses.
const (
	BillStatusPending = "pending"
	BillStatusPaid    = "paid"
)

// BillItem is one line on a bill.
type BillItem struct {
	Service  string  `bson:"service" json:"service"`
	Rate     float64 `bson:"rate" json:"rate"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Total    float64 `bson:"total" json:"total"`
}

// Bill is a billing record, created either manually from the admin panel or
// automatically when a booking is completed.
type Bill struct {
	ID            string     `bson:"id" json:"id"`
	BookingID     string     `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	ClientName    string     `bson:"clientName" json:"clientName"`
	ClientContact string     `bson:"clientContact" json:"clientContact"`
	Staff         string     `bson:"staff,omitempty" json:"staff,omitempty"`
	PaymentMode   string     `bson:"paymentMode" json:"paymentMode"`
	Items         []BillItem `bson:"items" json:"items"`
	TotalAmount   float64    `bson:"totalAmount" json:"totalAmount"`
	Date          string     `bson:"date" json:"date"` // "2006-01-02"
	Status        string     `bson:"status" json:"status"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
}
