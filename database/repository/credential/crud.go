package credentialRepo

import (
	"context"
	"errors"

	"atelier/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// There is exactly one credential record; it lives under a fixed key.
const credentialKey = "admin"

// ErrNoCredential is returned when the credential record has not been seeded.
var ErrNoCredential = errors.New("credential record not found")

// Get returns the current admin credential record.
func (r *mongoCredentialRepo) Get(ctx context.Context) (*models.Credential, error) {
	var doc struct {
		Key               string `bson:"key"`
		models.Credential `bson:",inline"`
	}
	err := r.coll.FindOne(ctx, bson.M{"key": credentialKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoCredential
	}
	if err != nil {
		return nil, err
	}
	return &doc.Credential, nil
}

// Replace overwrites the credential record atomically, creating it if absent.
func (r *mongoCredentialRepo) Replace(ctx context.Context, cred models.Credential) error {
	doc := bson.M{
		"key":          credentialKey,
		"passwordHash": cred.PasswordHash,
		"lastChanged":  cred.LastChanged,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"key": credentialKey}, doc, opts)
	return err
}
