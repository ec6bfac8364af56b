package auth

import (
	"context"
	"time"

	credentialRepo "atelier/database/repository/credential"
	"atelier/models"
	"atelier/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// minSecretLength is the floor for a replacement admin secret.
const minSecretLength = 8

// CredentialGate authenticates the single shared admin secret, rotates it,
// and throttles repeated failures per client key.
type CredentialGate struct {
	Repo     credentialRepo.CredentialRepository
	Attempts *AttemptStore

	// FailDelay slows automated guessing independently of the counter
	// logic. Zeroed in tests.
	FailDelay time.Duration
}

// NewCredentialGate wires a gate with the standard one second failure delay.
func NewCredentialGate(repo credentialRepo.CredentialRepository, attempts *AttemptStore) *CredentialGate {
	return &CredentialGate{
		Repo:      repo,
		Attempts:  attempts,
		FailDelay: time.Second,
	}
}

// Verify compares the supplied secret against the stored hash. The secret is
// never logged or echoed.
func (g *CredentialGate) Verify(ctx context.Context, secret string) bool {
	cred, err := g.Repo.Get(ctx)
	if err != nil {
		utils.GetLogger().Error("credential gate: failed to load credential record", zap.Error(err))
		return false
	}
	err = bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(secret))
	if err != nil {
		time.Sleep(g.FailDelay)
		return false
	}
	return true
}

// Authenticate runs the rate-limit check and the verification in order and
// issues an admin token on success.
func (g *CredentialGate) Authenticate(ctx context.Context, clientKey, secret string) (string, error) {
	if d := g.Attempts.Check(clientKey); !d.Allowed {
		return "", RateLimitedError{RetryAfter: d.RetryAfter}
	}
	if !g.Verify(ctx, secret) {
		return "", ErrInvalidCredential
	}
	return g.IssueToken()
}

// IssueToken produces a signed admin token with a 24-hour expiry.
func (g *CredentialGate) IssueToken() (string, error) {
	return utils.GenerateAdminToken()
}

// ChangeSecret rotates the admin secret. The previous record is overwritten
// atomically; tokens already issued stay valid until natural expiry.
func (g *CredentialGate) ChangeSecret(ctx context.Context, currentSecret, newSecret string) error {
	if !g.Verify(ctx, currentSecret) {
		return ErrInvalidCredential
	}
	if len(newSecret) < minSecretLength {
		return ErrWeakSecret
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newSecret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return g.Repo.Replace(ctx, models.Credential{
		PasswordHash: string(hash),
		LastChanged:  time.Now(),
	})
}

// SeedSecret installs an initial credential when none exists yet. It refuses
// to overwrite an existing record.
func (g *CredentialGate) SeedSecret(ctx context.Context, secret string) error {
	if _, err := g.Repo.Get(ctx); err == nil {
		return nil
	} else if err != credentialRepo.ErrNoCredential {
		return err
	}
	if len(secret) < minSecretLength {
		return ErrWeakSecret
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	utils.GetLogger().Info("seeding initial admin credential")
	return g.Repo.Replace(ctx, models.Credential{
		PasswordHash: string(hash),
		LastChanged:  time.Now(),
	})
}
