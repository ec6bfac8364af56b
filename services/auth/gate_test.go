package auth

import (
	"context"
	"testing"
	"time"

	"atelier/config"
	credentialRepo "atelier/database/repository/credential"
	"atelier/models"
	"atelier/utils"

	"golang.org/x/crypto/bcrypt"
)

// memCredentialRepo is an in-memory CredentialRepository for tests.
type memCredentialRepo struct {
	cred *models.Credential
}

func (r *memCredentialRepo) Get(ctx context.Context) (*models.Credential, error) {
	if r.cred == nil {
		return nil, credentialRepo.ErrNoCredential
	}
	return r.cred, nil
}

func (r *memCredentialRepo) Replace(ctx context.Context, cred models.Credential) error {
	r.cred = &cred
	return nil
}

func newTestGate(t *testing.T, secret string) (*CredentialGate, *memCredentialRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash secret: %v", err)
	}
	repo := &memCredentialRepo{cred: &models.Credential{
		PasswordHash: string(hash),
		LastChanged:  time.Now(),
	}}
	return &CredentialGate{
		Repo:      repo,
		Attempts:  NewAttemptStore(),
		FailDelay: 0,
	}, repo
}

func TestVerify(t *testing.T) {
	gate, _ := newTestGate(t, "correct horse battery")
	ctx := context.Background()

	if !gate.Verify(ctx, "correct horse battery") {
		t.Fatal("correct secret should verify")
	}
	if gate.Verify(ctx, "wrong guess") {
		t.Fatal("wrong secret should not verify")
	}
}

func TestChangeSecret_RotatesCredential(t *testing.T) {
	gate, _ := newTestGate(t, "old-secret-1")
	ctx := context.Background()

	if err := gate.ChangeSecret(ctx, "old-secret-1", "new-secret-2"); err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if !gate.Verify(ctx, "new-secret-2") {
		t.Fatal("new secret should verify after rotation")
	}
	if gate.Verify(ctx, "old-secret-1") {
		t.Fatal("old secret should stop working after rotation")
	}
}

func TestChangeSecret_RequiresCurrentSecret(t *testing.T) {
	gate, _ := newTestGate(t, "old-secret-1")

	err := gate.ChangeSecret(context.Background(), "not the secret", "new-secret-2")
	if err != ErrInvalidCredential {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestChangeSecret_RejectsShortSecret(t *testing.T) {
	gate, _ := newTestGate(t, "old-secret-1")

	err := gate.ChangeSecret(context.Background(), "old-secret-1", "short")
	if err != ErrWeakSecret {
		t.Fatalf("expected ErrWeakSecret, got %v", err)
	}
}

func TestAuthenticate_IssuesAdminToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-signing-key"
	gate, _ := newTestGate(t, "correct horse battery")

	token, err := gate.Authenticate(context.Background(), "1.2.3.4", "correct horse battery")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if !utils.IsAdminToken(token) {
		t.Fatal("issued token should carry the admin claim")
	}
}

func TestAuthenticate_RateLimitsRepeatedFailures(t *testing.T) {
	gate, _ := newTestGate(t, "correct horse battery")
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := gate.Authenticate(ctx, "1.2.3.4", "wrong"); err != ErrInvalidCredential {
			t.Fatalf("attempt %d: expected ErrInvalidCredential, got %v", i+1, err)
		}
	}

	_, err := gate.Authenticate(ctx, "1.2.3.4", "wrong")
	rl, ok := err.(RateLimitedError)
	if !ok {
		t.Fatalf("expected RateLimitedError on 5th rapid attempt, got %v", err)
	}
	if rl.RetryAfter <= 0 {
		t.Fatal("rate limit error should carry a retry-after hint")
	}
}

func TestSeedSecret_DoesNotOverwrite(t *testing.T) {
	gate, repo := newTestGate(t, "existing-secret")
	before := repo.cred.PasswordHash

	if err := gate.SeedSecret(context.Background(), "another-secret"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if repo.cred.PasswordHash != before {
		t.Fatal("seeding must not replace an existing credential")
	}
}

func TestSeedSecret_InstallsWhenMissing(t *testing.T) {
	gate := &CredentialGate{
		Repo:      &memCredentialRepo{},
		Attempts:  NewAttemptStore(),
		FailDelay: 0,
	}
	ctx := context.Background()

	if err := gate.SeedSecret(ctx, "fresh-secret-1"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !gate.Verify(ctx, "fresh-secret-1") {
		t.Fatal("seeded secret should verify")
	}
}
