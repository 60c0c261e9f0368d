package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhidesai17/gigflow/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewManager("secret", time.Hour)
	user := &model.User{ID: uuid.New(), Email: "ada@example.com"}

	token, err := manager.IssueToken(user, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	principal, err := manager.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if principal.UserID != user.ID {
		t.Fatalf("subject = %s, want %s", principal.UserID, user.ID)
	}
	if principal.Email != user.Email {
		t.Fatalf("email = %s, want %s", principal.Email, user.Email)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)
	user := &model.User{ID: uuid.New(), Email: "ada@example.com"}

	token, err := issuer.IssueToken(user, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatalf("token verified with wrong secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	manager := NewManager("secret", time.Hour)
	user := &model.User{ID: uuid.New(), Email: "ada@example.com"}

	token, err := manager.IssueToken(user, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := manager.ParseToken(token); err == nil {
		t.Fatalf("expired token verified")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse" {
		t.Fatalf("password stored in the clear")
	}
	if !CheckPassword(hash, "correct horse") {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("wrong password accepted")
	}
}
