package credentialRepo

import (
	"context"

	"atelier/database"
	"atelier/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CredentialRepository reads and rotates the single admin credential record.
type CredentialRepository interface {
	Get(ctx context.Context) (*models.Credential, error)
	Replace(ctx context.Context, cred models.Credential) error
}

type mongoCredentialRepo struct {
	coll *mongo.Collection
}

// NewMongoCredentialRepo returns a CredentialRepository backed by MongoDB.
func NewMongoCredentialRepo() CredentialRepository {
	db := database.MongoClient.Database("atelier")
	return &mongoCredentialRepo{
		coll: db.Collection("credentials"),
	}
}
