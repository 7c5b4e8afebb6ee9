package models

import "time"

// Staff is a salon staff member.
type Staff struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Contact   string    `bson:"contact" json:"contact"`
	Balance   float64   `bson:"balance,omitempty" json:"balance,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
