package jwt

import (
	"errors"
	"testing"

	"Gastos-API/domain"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	service := &jwtService{secretKey: "test-secret", issuer: "GASTOS"}
	userID := uuid.New().String()

	token := service.GenerateTokenUser(userID, domain.RoleUser)
	if token == "" {
		t.Fatal("expected a signed token")
	}

	gotID, gotRole, err := service.GetUserIDByToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != userID {
		t.Errorf("user id = %q, want %q", gotID, userID)
	}
	if gotRole != domain.RoleUser {
		t.Errorf("role = %q, want %q", gotRole, domain.RoleUser)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	signer := &jwtService{secretKey: "secret-a", issuer: "GASTOS"}
	verifier := &jwtService{secretKey: "secret-b", issuer: "GASTOS"}

	token := signer.GenerateTokenUser(uuid.New().String(), domain.RoleUser)

	if _, _, err := verifier.GetUserIDByToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("error = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	service := &jwtService{secretKey: "test-secret", issuer: "GASTOS"}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "definitely-not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.eyJ1c2VyX2lkIjo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := service.GetUserIDByToken(tt.token); !errors.Is(err, domain.ErrTokenInvalid) {
				t.Errorf("error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}
