package contentRepo

import (
	"context"
	"errors"
	"time"

	"atelier/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a content entry does not exist.
var ErrNotFound = errors.New("content entry not found")

// ErrDuplicateSlug is returned when creating a project whose slug is taken.
var ErrDuplicateSlug = errors.New("project slug already exists")

// ListProjects returns projects, newest first. Member-only entries are
// excluded from the published listing; the admin listing returns everything.
func (r *mongoContentRepo) ListProjects(ctx context.Context, publishedOnly bool) ([]models.Project, error) {
	filter := bson.M{}
	if publishedOnly {
		filter = bson.M{"published": true, "memberOnly": false}
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.projects.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListMemberProjects returns published member-only projects.
func (r *mongoContentRepo) ListMemberProjects(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.projects.Find(ctx, bson.M{"published": true, "memberOnly": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns a single project by slug.
func (r *mongoContentRepo) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	var p models.Project
	err := r.projects.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject inserts a new project; slugs are unique.
func (r *mongoContentRepo) CreateProject(ctx context.Context, p models.Project) error {
	count, err := r.projects.CountDocuments(ctx, bson.M{"slug": p.Slug})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateSlug
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	_, err = r.projects.InsertOne(ctx, p)
	return err
}

// UpdateProject replaces a project identified by slug.
func (r *mongoContentRepo) UpdateProject(ctx context.Context, slug string, p models.Project) error {
	p.UpdatedAt = time.Now()
	res, err := r.projects.ReplaceOne(ctx, bson.M{"slug": slug}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProject removes a project by slug.
func (r *mongoContentRepo) DeleteProject(ctx context.Context, slug string) error {
	res, err := r.projects.DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTestimonials returns testimonials, newest first.
func (r *mongoContentRepo) ListTestimonials(ctx context.Context, publishedOnly bool) ([]models.Testimonial, error) {
	filter := bson.M{}
	if publishedOnly {
		filter = bson.M{"published": true}
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.testimonials.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var testimonials []models.Testimonial
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// CreateTestimonial inserts a testimonial and returns its ID.
func (r *mongoContentRepo) CreateTestimonial(ctx context.Context, t models.Testimonial) (string, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now()
	if _, err := r.testimonials.InsertOne(ctx, t); err != nil {
		return "", err
	}
	return t.ID, nil
}

// DeleteTestimonial removes a testimonial by ID.
func (r *mongoContentRepo) DeleteTestimonial(ctx context.Context, id string) error {
	res, err := r.testimonials.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
