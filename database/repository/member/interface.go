package memberRepo

import (
	"context"

	"atelier/database"
	"atelier/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MemberRepository stores members-area accounts.
type MemberRepository interface {
	Create(ctx context.Context, m models.Member) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	GetByID(ctx context.Context, id string) (*models.Member, error)
	List(ctx context.Context) ([]models.Member, error)
	SetActive(ctx context.Context, id string, active bool) error
	TouchLastSeen(ctx context.Context, id string) error
}

type mongoMemberRepo struct {
	coll *mongo.Collection
}

// NewMongoMemberRepo returns a MemberRepository backed by MongoDB.
func NewMongoMemberRepo() MemberRepository {
	db := database.MongoClient.Database("atelier")
	return &mongoMemberRepo{
		coll: db.Collection("members"),
	}
}
