package chatlogRepo

import (
	"context"
	"errors"
	"time"

	"atelier/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a conversation does not exist.
var ErrNotFound = errors.New("conversation not found")

// AppendExchange appends a visitor/assistant message pair to the transcript,
// creating the conversation document on first contact.
func (r *mongoChatLogRepo) AppendExchange(ctx context.Context, visitorID string, visitor, assistant models.ChatMessage) error {
	now := time.Now()
	update := bson.M{
		"$push": bson.M{
			"messages": bson.M{"$each": []models.ChatMessage{visitor, assistant}},
		},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"visitorId": visitorID, "startedAt": now},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"visitorId": visitorID}, update, opts)
	return err
}

// GetConversation returns the full transcript for a visitor.
func (r *mongoChatLogRepo) GetConversation(ctx context.Context, visitorID string) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.coll.FindOne(ctx, bson.M{"visitorId": visitorID}).Decode(&conv)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListRecent returns the most recently active conversations.
func (r *mongoChatLogRepo) ListRecent(ctx context.Context, limit int64) ([]models.Conversation, error) {
	opts := options.Find().SetSort(bson.M{"updatedAt": -1}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conversations []models.Conversation
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}
