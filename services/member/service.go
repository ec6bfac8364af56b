// Package member gates the members area behind invite codes.
package member

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	contentRepo "atelier/database/repository/content"
	memberRepo "atelier/database/repository/member"
	"atelier/models"
	"atelier/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidInvite is the generic failure for a bad email/code pair. It never
// distinguishes unknown members from wrong codes.
var ErrInvalidInvite = errors.New("invalid invite")

// MemberService redeems invite codes and serves member-only resources.
type MemberService interface {
	Redeem(ctx context.Context, email, code string) (string, error)
	Resources(ctx context.Context, memberID string) ([]models.Project, error)
	Create(ctx context.Context, name, email string) (*models.Member, string, error)
	Revoke(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Member, error)
}

// DefaultMemberService is the Mongo-backed implementation.
type DefaultMemberService struct {
	Repo    memberRepo.MemberRepository
	Content contentRepo.ContentRepository
}

// Redeem checks an invite code and issues a member token.
func (s *DefaultMemberService) Redeem(ctx context.Context, email, code string) (string, error) {
	m, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidInvite
	}
	if !m.Active {
		return "", ErrInvalidInvite
	}
	if bcrypt.CompareHashAndPassword([]byte(m.InviteCodeHash), []byte(code)) != nil {
		return "", ErrInvalidInvite
	}

	if err := s.Repo.TouchLastSeen(ctx, m.ID); err != nil {
		utils.GetLogger().Warn("member: failed to touch last seen", zap.String("memberId", m.ID), zap.Error(err))
	}
	return utils.GenerateMemberToken(m.ID)
}

// Resources returns member-only portfolio entries for an active member.
func (s *DefaultMemberService) Resources(ctx context.Context, memberID string) ([]models.Project, error) {
	m, err := s.Repo.GetByID(ctx, memberID)
	if err != nil {
		return nil, ErrInvalidInvite
	}
	if !m.Active {
		return nil, ErrInvalidInvite
	}
	return s.Content.ListMemberProjects(ctx)
}

// Create registers a member and returns the one-time plaintext invite code.
// Only the bcrypt hash is stored.
func (s *DefaultMemberService) Create(ctx context.Context, name, email string) (*models.Member, string, error) {
	code, err := generateInviteCode()
	if err != nil {
		return nil, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	m := models.Member{
		Name:           name,
		Email:          email,
		InviteCodeHash: string(hash),
		Active:         true,
	}
	id, err := s.Repo.Create(ctx, m)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create member: %w", err)
	}
	m.ID = id
	return &m, code, nil
}

// Revoke deactivates a member. Issued tokens lapse at natural expiry.
func (s *DefaultMemberService) Revoke(ctx context.Context, id string) error {
	return s.Repo.SetActive(ctx, id, false)
}

// List returns all members for the admin dashboard.
func (s *DefaultMemberService) List(ctx context.Context) ([]models.Member, error) {
	return s.Repo.List(ctx)
}

func generateInviteCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
