package models

import "time"

// ServiceRecord is one completed visit in a client's history.
type ServiceRecord struct {
	Date        string    `bson:"date" json:"date"`
	Services    []string  `bson:"services" json:"services"`
	Staff       string    `bson:"staff" json:"staff"`
	Amount      float64   `bson:"amount" json:"amount"`
	PaymentMode string    `bson:"paymentMode" json:"paymentMode"`
	CompletedAt time.Time `bson:"completedAt" json:"completedAt"`
}

// Client is a salon customer record. Multiple records may exist for the same
// person (created at different times with differently formatted phone
// numbers); the admin view merges them by normalized phone on every read.
type Client struct {
	ID             string          `bson:"id" json:"id"`
	Name           string          `bson:"name" json:"name"`
	Contact        string          `bson:"contact" json:"contact"`
	Allergies      string          `bson:"allergies,omitempty" json:"allergies,omitempty"`
	ServiceHistory []ServiceRecord `bson:"serviceHistory,omitempty" json:"serviceHistory,omitempty"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// MergedClient is the derived, read-only view of all client records sharing
// one normalized phone number. It is recomputed on every read and never
// written back to storage.
type MergedClient struct {
	NormalizedPhone string          `json:"normalizedPhone"`
	Primary         Client          `json:"primary"`            // most recently updated record in the group
	Records         []Client        `json:"records"`            // all group members
	History         []ServiceRecord `json:"history"`            // concatenated, newest first
	Allergies       []string        `json:"allergies"`          // verbatim union of non-empty values
	TotalSpent      float64         `json:"totalSpent"`
	VisitCount      int             `json:"visitCount"`
	LastVisit       *time.Time      `json:"lastVisit,omitempty"`
}
