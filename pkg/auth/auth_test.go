package auth_test

import (
	"testing"

	"github.com/shashiranjanraj/vyapari/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := auth.ValidateToken(bad); err == nil {
			t.Errorf("ValidateToken(%q) should fail", bad)
		}
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	token, err := auth.GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := auth.ValidateToken(tampered); err == nil {
		t.Error("tampered token should fail validation")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret-pass" {
		t.Fatal("hash must differ from the plain text")
	}

	if !auth.CheckPassword(hash, "secret-pass") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
