package utils

import (
	"testing"

	"atelier/config"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-signing-key"

	token, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !IsAdminToken(token) {
		t.Fatal("freshly issued admin token should validate")
	}
	if _, err := MemberIDFromToken(token); err == nil {
		t.Fatal("an admin token must not pass as a member token")
	}
}

func TestMemberTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-signing-key"

	token, err := GenerateMemberToken("member-42")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	id, err := MemberIDFromToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if id != "member-42" {
		t.Fatalf("subject = %q, want member-42", id)
	}
	if IsAdminToken(token) {
		t.Fatal("a member token must not pass as an admin token")
	}
}

func TestTokenRejectedWithWrongKey(t *testing.T) {
	config.AppConfig.JWTSecret = "test-signing-key"
	token, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	config.AppConfig.JWTSecret = "a-different-key"
	defer func() { config.AppConfig.JWTSecret = "test-signing-key" }()

	if IsAdminToken(token) {
		t.Fatal("token signed with another key should be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-signing-key"

	if IsAdminToken("not.a.token") {
		t.Fatal("garbage input should be rejected")
	}
	if _, err := MemberIDFromToken(""); err == nil {
		t.Fatal("empty token should be rejected")
	}
}
