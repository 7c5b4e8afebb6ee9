package models

import "time"

// Feedback is a customer feedback submission from the public site.
type Feedback struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Phone            string    `bson:"phone" json:"phone"`
	Rating           int       `bson:"rating" json:"rating"` // 1..5
	WhatYouLike      string    `bson:"whatYouLike,omitempty" json:"whatYouLike,omitempty"`
	WhatWeCanImprove string    `bson:"whatWeCanImprove,omitempty" json:"whatWeCanImprove,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}
