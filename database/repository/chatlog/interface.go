package chatlogRepo

import (
	"context"

	"atelier/database"
	"atelier/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ChatLogRepository persists visitor chat transcripts for admin review.
type ChatLogRepository interface {
	AppendExchange(ctx context.Context, visitorID string, visitor, assistant models.ChatMessage) error
	GetConversation(ctx context.Context, visitorID string) (*models.Conversation, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Conversation, error)
}

type mongoChatLogRepo struct {
	coll *mongo.Collection
}

// NewMongoChatLogRepo returns a ChatLogRepository backed by MongoDB.
func NewMongoChatLogRepo() ChatLogRepository {
	db := database.MongoClient.Database("atelier")
	return &mongoChatLogRepo{
		coll: db.Collection("chat_logs"),
	}
}
