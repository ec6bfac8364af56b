package memberRepo

import (
	"context"
	"errors"
	"time"

	"atelier/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a member does not exist.
var ErrNotFound = errors.New("member not found")

// Create inserts a new member and returns its ID.
func (r *mongoMemberRepo) Create(ctx context.Context, m models.Member) (string, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return "", err
	}
	return m.ID, nil
}

// GetByEmail returns a member by email.
func (r *mongoMemberRepo) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	var m models.Member
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByID returns a member by ID.
func (r *mongoMemberRepo) GetByID(ctx context.Context, id string) (*models.Member, error) {
	var m models.Member
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all members.
func (r *mongoMemberRepo) List(ctx context.Context) ([]models.Member, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.Member
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// SetActive flips a member's active flag.
func (r *mongoMemberRepo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchLastSeen records members-area activity.
func (r *mongoMemberRepo) TouchLastSeen(ctx context.Context, id string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"lastSeen": time.Now()}})
	return err
}
