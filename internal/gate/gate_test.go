package gate

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCheck(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hooray"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	g := Gate{Hash: hash}

	tests := []struct {
		name     string
		gate     Gate
		password string
		want     error
	}{
		{"open gate", Gate{}, "anything", nil},
		{"match", g, "hooray", nil},
		{"mismatch", g, "boo", ErrDenied},
		{"empty", g, "", ErrDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.gate.Check(tt.password); !errors.Is(err, tt.want) {
				t.Errorf("Check(%q) = %v, want %v", tt.password, err, tt.want)
			}
		})
	}
}

func TestCheckMalformedHash(t *testing.T) {
	err := Gate{Hash: []byte("not-a-hash")}.Check("x")
	if err == nil || errors.Is(err, ErrDenied) {
		t.Errorf("Check() = %v, want a non-denial error", err)
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if err := (Gate{Hash: []byte(hash)}).Check("secret"); err != nil {
		t.Errorf("Check() with fresh hash = %v", err)
	}
	if _, err := HashPassword(""); err == nil {
		t.Error("HashPassword(\"\") succeeded")
	}
}

func TestPromptOpenGate(t *testing.T) {
	if err := Prompt(Gate{}); err != nil {
		t.Errorf("Prompt(open) = %v", err)
	}
}
