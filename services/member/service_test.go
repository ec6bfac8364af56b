package member

import (
	"context"
	"fmt"
	"testing"

	"atelier/config"
	contentRepo "atelier/database/repository/content"
	memberRepo "atelier/database/repository/member"
	"atelier/models"
	"atelier/utils"
)

type memMemberRepo struct {
	members map[string]*models.Member
	nextID  int
}

func newMemMemberRepo() *memMemberRepo {
	return &memMemberRepo{members: make(map[string]*models.Member)}
}

func (r *memMemberRepo) Create(ctx context.Context, m models.Member) (string, error) {
	r.nextID++
	id := fmt.Sprintf("member-%d", r.nextID)
	m.ID = id
	r.members[id] = &m
	return id, nil
}

func (r *memMemberRepo) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	for _, m := range r.members {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, memberRepo.ErrNotFound
}

func (r *memMemberRepo) GetByID(ctx context.Context, id string) (*models.Member, error) {
	if m, ok := r.members[id]; ok {
		return m, nil
	}
	return nil, memberRepo.ErrNotFound
}

func (r *memMemberRepo) List(ctx context.Context) ([]models.Member, error) {
	var out []models.Member
	for _, m := range r.members {
		out = append(out, *m)
	}
	return out, nil
}

func (r *memMemberRepo) SetActive(ctx context.Context, id string, active bool) error {
	m, ok := r.members[id]
	if !ok {
		return memberRepo.ErrNotFound
	}
	m.Active = active
	return nil
}

func (r *memMemberRepo) TouchLastSeen(ctx context.Context, id string) error {
	return nil
}

// memResourceRepo implements just enough of the content repository to serve
// member resources.
type memResourceRepo struct {
	memberProjects []models.Project
}

func (r *memResourceRepo) ListMemberProjects(ctx context.Context) ([]models.Project, error) {
	return r.memberProjects, nil
}

func (r *memResourceRepo) ListProjects(ctx context.Context, publishedOnly bool) ([]models.Project, error) {
	return nil, nil
}

func (r *memResourceRepo) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	return nil, contentRepo.ErrNotFound
}

func (r *memResourceRepo) CreateProject(ctx context.Context, p models.Project) error { return nil }

func (r *memResourceRepo) UpdateProject(ctx context.Context, slug string, p models.Project) error {
	return nil
}

func (r *memResourceRepo) DeleteProject(ctx context.Context, slug string) error { return nil }

func (r *memResourceRepo) ListTestimonials(ctx context.Context, publishedOnly bool) ([]models.Testimonial, error) {
	return nil, nil
}

func (r *memResourceRepo) CreateTestimonial(ctx context.Context, t models.Testimonial) (string, error) {
	return "", nil
}

func (r *memResourceRepo) DeleteTestimonial(ctx context.Context, id string) error { return nil }

func newTestMemberService() (*DefaultMemberService, *memMemberRepo) {
	config.AppConfig.JWTSecret = "test-signing-key"
	repo := newMemMemberRepo()
	svc := &DefaultMemberService{
		Repo: repo,
		Content: &memResourceRepo{memberProjects: []models.Project{
			{Slug: "case-study", Title: "Case Study", MemberOnly: true},
		}},
	}
	return svc, repo
}

func TestCreateAndRedeem(t *testing.T) {
	svc, _ := newTestMemberService()
	ctx := context.Background()

	m, code, err := svc.Create(ctx, "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	if code == "" {
		t.Fatal("create should return the one-time invite code")
	}
	if m.InviteCodeHash == code {
		t.Fatal("the stored hash must not be the plaintext code")
	}

	token, err := svc.Redeem(ctx, "ada@example.com", code)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	id, err := utils.MemberIDFromToken(token)
	if err != nil {
		t.Fatalf("issued token should validate: %v", err)
	}
	if id != m.ID {
		t.Fatalf("token subject = %q, want %q", id, m.ID)
	}
}

func TestRedeem_WrongCode(t *testing.T) {
	svc, _ := newTestMemberService()
	ctx := context.Background()

	if _, _, err := svc.Create(ctx, "Ada", "ada@example.com"); err != nil {
		t.Fatalf("create member: %v", err)
	}

	if _, err := svc.Redeem(ctx, "ada@example.com", "not-the-code"); err != ErrInvalidInvite {
		t.Fatalf("expected ErrInvalidInvite for wrong code, got %v", err)
	}
	if _, err := svc.Redeem(ctx, "nobody@example.com", "whatever"); err != ErrInvalidInvite {
		t.Fatalf("expected the same generic error for unknown email, got %v", err)
	}
}

func TestRedeem_RevokedMember(t *testing.T) {
	svc, _ := newTestMemberService()
	ctx := context.Background()

	m, code, err := svc.Create(ctx, "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	if err := svc.Revoke(ctx, m.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	if _, err := svc.Redeem(ctx, "ada@example.com", code); err != ErrInvalidInvite {
		t.Fatalf("revoked member should not redeem, got %v", err)
	}
}

func TestResources(t *testing.T) {
	svc, _ := newTestMemberService()
	ctx := context.Background()

	m, _, err := svc.Create(ctx, "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("create member: %v", err)
	}

	projects, err := svc.Resources(ctx, m.ID)
	if err != nil {
		t.Fatalf("resources: %v", err)
	}
	if len(projects) != 1 || projects[0].Slug != "case-study" {
		t.Fatalf("expected the member-only project, got %v", projects)
	}

	if err := svc.Revoke(ctx, m.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := svc.Resources(ctx, m.ID); err != ErrInvalidInvite {
		t.Fatalf("revoked member should be denied resources, got %v", err)
	}
}
