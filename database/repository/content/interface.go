package contentRepo

import (
	"context"

	"atelier/database"
	"atelier/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContentRepository stores the portfolio content edited through the admin area.
type ContentRepository interface {
	ListProjects(ctx context.Context, publishedOnly bool) ([]models.Project, error)
	ListMemberProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, slug string) (*models.Project, error)
	CreateProject(ctx context.Context, p models.Project) error
	UpdateProject(ctx context.Context, slug string, p models.Project) error
	DeleteProject(ctx context.Context, slug string) error

	ListTestimonials(ctx context.Context, publishedOnly bool) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, t models.Testimonial) (string, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

type mongoContentRepo struct {
	projects     *mongo.Collection
	testimonials *mongo.Collection
}

// NewMongoContentRepo returns a ContentRepository backed by MongoDB.
func NewMongoContentRepo() ContentRepository {
	db := database.MongoClient.Database("atelier")
	return &mongoContentRepo{
		projects:     db.Collection("projects"),
		testimonials: db.Collection("testimonials"),
	}
}
