package models

import "time"

// Credential is the single admin credential record. Exactly one exists;
// rotation replaces it wholesale, no history is retained.
type Credential struct {
	PasswordHash string    `bson:"passwordHash" json:"-"`
	LastChanged  time.Time `bson:"lastChanged" json:"lastChanged"`
}
