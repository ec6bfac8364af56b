// Package content manages the portfolio entries and testimonials served to
// the public site and edited through the admin area.
package content

import (
	"context"
	"errors"
	"strings"

	contentRepo "atelier/database/repository/content"
	"atelier/models"
)

// ErrInvalidProject covers missing required fields.
var ErrInvalidProject = errors.New("project requires a slug and a title")

// ErrInvalidTestimonial covers missing required fields.
var ErrInvalidTestimonial = errors.New("testimonial requires an author and a quote")

// ContentService is the CMS surface over the content repository.
type ContentService interface {
	PublicProjects(ctx context.Context) ([]models.Project, error)
	PublicTestimonials(ctx context.Context) ([]models.Testimonial, error)
	GetProject(ctx context.Context, slug string) (*models.Project, error)

	AllProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, p models.Project) error
	UpdateProject(ctx context.Context, slug string, p models.Project) error
	DeleteProject(ctx context.Context, slug string) error

	AllTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, t models.Testimonial) (string, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

// DefaultContentService validates input and delegates to the repository.
type DefaultContentService struct {
	Repo contentRepo.ContentRepository
}

func (s *DefaultContentService) PublicProjects(ctx context.Context) ([]models.Project, error) {
	return s.Repo.ListProjects(ctx, true)
}

func (s *DefaultContentService) PublicTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.Repo.ListTestimonials(ctx, true)
}

func (s *DefaultContentService) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	return s.Repo.GetProject(ctx, slug)
}

func (s *DefaultContentService) AllProjects(ctx context.Context) ([]models.Project, error) {
	return s.Repo.ListProjects(ctx, false)
}

func (s *DefaultContentService) CreateProject(ctx context.Context, p models.Project) error {
	p.Slug = normalizeSlug(p.Slug)
	if p.Slug == "" || strings.TrimSpace(p.Title) == "" {
		return ErrInvalidProject
	}
	return s.Repo.CreateProject(ctx, p)
}

func (s *DefaultContentService) UpdateProject(ctx context.Context, slug string, p models.Project) error {
	p.Slug = normalizeSlug(p.Slug)
	if p.Slug == "" || strings.TrimSpace(p.Title) == "" {
		return ErrInvalidProject
	}
	return s.Repo.UpdateProject(ctx, normalizeSlug(slug), p)
}

func (s *DefaultContentService) DeleteProject(ctx context.Context, slug string) error {
	return s.Repo.DeleteProject(ctx, normalizeSlug(slug))
}

func (s *DefaultContentService) AllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.Repo.ListTestimonials(ctx, false)
}

func (s *DefaultContentService) CreateTestimonial(ctx context.Context, t models.Testimonial) (string, error) {
	if strings.TrimSpace(t.Author) == "" || strings.TrimSpace(t.Quote) == "" {
		return "", ErrInvalidTestimonial
	}
	return s.Repo.CreateTestimonial(ctx, t)
}

func (s *DefaultContentService) DeleteTestimonial(ctx context.Context, id string) error {
	return s.Repo.DeleteTestimonial(ctx, id)
}

// normalizeSlug lowercases and hyphenates a slug candidate.
func normalizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.ReplaceAll(slug, " ", "-")
	return strings.Trim(slug, "-")
}
