package models

import "time"

// ChatMessage is a single exchange turn. Role is "visitor" or "assistant".
type ChatMessage struct {
	Role string    `bson:"role" json:"role"`
	Text string    `bson:"text" json:"text"`
	At   time.Time `bson:"at" json:"at"`
}

// ChatContext is the short-lived conversation memory held in Redis.
type ChatContext struct {
	Messages []ChatMessage `json:"messages"`
}

// Conversation is the durable transcript of a visitor chat session.
type Conversation struct {
	VisitorID string        `bson:"visitorId" json:"visitorId"`
	Messages  []ChatMessage `bson:"messages" json:"messages"`
	StartedAt time.Time     `bson:"startedAt" json:"startedAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}
