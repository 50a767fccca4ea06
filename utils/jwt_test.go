package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id, ok := claims["user_id"].(float64); !ok || uint(id) != 42 {
		t.Errorf("user_id claim = %v", claims["user_id"])
	}
	if claims["email"] != "user@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := GenerateToken(1, "x@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := VerifyToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	if _, err := VerifyToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}
