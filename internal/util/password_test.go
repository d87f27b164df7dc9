package util

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "MyPassword123"

	hashed, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Error("hash should be in bcrypt format")
	}

	// empty password is rejected
	if _, err := HashPassword("", 4); err == nil {
		t.Error("empty password should return an error")
	}

	// same password yields different hashes (random salt)
	hashed2, _ := HashPassword(password, 4)
	if hashed == hashed2 {
		t.Error("same password should produce different hashes")
	}
}

func TestHashPassword_CostFallback(t *testing.T) {
	// out-of-range cost falls back to the default instead of failing
	if _, err := HashPassword("Secret123", 99); err != nil {
		t.Errorf("out-of-range cost should fall back, got error: %v", err)
	}
}

func TestCheckPassword(t *testing.T) {
	password := "TestPass456"
	hashed, _ := HashPassword(password, 4)

	if !CheckPassword(password, hashed) {
		t.Error("correct password should verify")
	}
	if CheckPassword("WrongPass", hashed) {
		t.Error("wrong password should not verify")
	}
	if CheckPassword("", hashed) {
		t.Error("empty password should not verify")
	}
	if CheckPassword(password, "") {
		t.Error("empty hash should not verify")
	}
	if CheckPassword(password, "invalid-format") {
		t.Error("invalid hash format should not verify")
	}
}

func TestRandomString(t *testing.T) {
	str, err := RandomString(32)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(str) != 32 {
		t.Errorf("length = %d, want 32", len(str))
	}

	str2, _ := RandomString(32)
	if str == str2 {
		t.Error("should generate distinct strings")
	}

	if _, err := RandomString(0); err == nil {
		t.Error("non-positive length should return an error")
	}
}
