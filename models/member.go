package models

import "time"

// Member is a members-area account, unlocked with an invite code.
type Member struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	InviteCodeHash string    `bson:"inviteCodeHash" json:"-"`
	Active         bool      `bson:"active" json:"active"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	LastSeen       time.Time `bson:"lastSeen,omitempty" json:"lastSeen,omitempty"`
}
