package models

import "time"

// Booking statuses. Pending and confirmed bookings occupy chair capacity;
// completed and cancelled ones do not.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents an appointment request or committed appointment.
type Booking struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Phone     string   `bson:"phone" json:"phone"`
	Email     string   `bson:"email,omitempty" json:"email,omitempty"`
	Service   string   `bson:"service,omitempty" json:"service,omitempty"`   // legacy single-service field from older documents
	Services  []string `bson:"services,omitempty" json:"services,omitempty"` // canonical multi-service field
	Date      string   `bson:"date" json:"date"`                             // "2006-01-02", salon-local
	Time      string   `bson:"time" json:"time"`                             // "15:04", salon-local
	Allergies string   `bson:"allergies,omitempty" json:"allergies,omitempty"`
	Message   string   `bson:"message,omitempty" json:"message,omitempty"`
	Status    string   `bson:"status" json:"status"`

	// Completion details, set when the service is marked done at the chair.
	CompletedBy string     `bson:"completedBy,omitempty" json:"completedBy,omitempty"`
	Amount      float64    `bson:"amount,omitempty" json:"amount,omitempty"`
	PaymentMode string     `bson:"paymentMode,omitempty" json:"paymentMode,omitempty"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceNames returns the canonical service list, folding the legacy
// singular field into the plural shape. Documents written by the old site
// carry only "service"; everything downstream works on this normalized view.
func (b *Booking) ServiceNames() []string {
	if len(b.Services) > 0 {
		return b.Services
	}
	if b.Service != "" {
		return []string{b.Service}
	}
	return nil
}

// Active reports whether the booking occupies chair capacity.
func (b *Booking) Active() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Terminal reports whether the booking status admits no further transitions.
func (b *Booking) Terminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}
