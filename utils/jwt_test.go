package utils

import (
	"os"
	"testing"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
)

func TestTokenRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateToken(42, models.RoleAdmin)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("userId = %d, want 42", claims.UserID)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("role = %s, want admin", claims.Role)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	if _, err := ValidateJWT(""); err == nil {
		t.Error("empty token accepted")
	}
	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Error("malformed token accepted")
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	token, hashed, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == hashed {
		t.Error("stored token equals the client token")
	}
	if len(token) != 64 || len(hashed) != 64 {
		t.Errorf("unexpected token lengths %d/%d", len(token), len(hashed))
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Error("password not hashed")
	}
	if !CheckPasswordHash("secret123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestNewTransactionRef(t *testing.T) {
	a := NewTransactionRef()
	b := NewTransactionRef()
	if a == b {
		t.Error("transaction refs collide")
	}
	if len(a) < 5 || a[:4] != "PAY-" {
		t.Errorf("unexpected ref format %q", a)
	}
}
