package models

import "time"

// Project is a portfolio entry shown on the public site.
type Project struct {
	Slug       string    `bson:"slug" json:"slug"`
	Title      string    `bson:"title" json:"title"`
	Summary    string    `bson:"summary" json:"summary"`
	Body       string    `bson:"body,omitempty" json:"body,omitempty"`
	Tags       []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CoverURL   string    `bson:"coverUrl,omitempty" json:"coverUrl,omitempty"`
	Published  bool      `bson:"published" json:"published"`
	MemberOnly bool      `bson:"memberOnly" json:"memberOnly"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Testimonial is a client quote shown on the public site.
type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Author    string    `bson:"author" json:"author"`
	Quote     string    `bson:"quote" json:"quote"`
	Published bool      `bson:"published" json:"published"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
