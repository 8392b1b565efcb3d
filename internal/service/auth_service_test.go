package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/digibuster/helpdesk-api/internal/config"
	"github.com/digibuster/helpdesk-api/internal/domain"
	apperrors "github.com/digibuster/helpdesk-api/pkg/util"
)

func newAuthService() *AuthService {
	cfg := config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		BcryptCost:    bcrypt.MinCost,
	}
	return NewAuthService(cfg, newMemUserRepo())
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T: %v", err, err)
	}
	return domainErr.Code
}

func TestAuthService_RegisterDefaultsAndHashing(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Email:    "alice@example.com",
		Password: "hunter22",
		FullName: "Alice Smith",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("expected default role customer, got %q", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected new user active")
	}
	if user.PasswordHash == "" || user.PasswordHash == "hunter22" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	input := RegisterInput{Email: "bob@example.com", Password: "pw123456", FullName: "Bob"}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(ctx, input)
	if err == nil {
		t.Fatalf("expected duplicate email error")
	}
	if code := errorCode(t, err); code != "DUPLICATE_EMAIL" {
		t.Fatalf("expected DUPLICATE_EMAIL, got %s", code)
	}
}

func TestAuthService_LoginIssuesVerifiableToken(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Email:    "carol@example.com",
		Password: "pw123456",
		FullName: "Carol",
		Role:     domain.RoleAgent,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	loggedIn, token, exp, err := svc.Login(ctx, "carol@example.com", "pw123456")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Fatalf("login returned wrong user: %+v", loggedIn)
	}
	if exp.Before(loggedIn.CreatedAt) {
		t.Fatalf("expiry not in the future: %v", exp)
	}

	subject, err := svc.TokenManager().Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if subject != user.ID {
		t.Fatalf("token subject = %q, want %q", subject, user.ID)
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "dave@example.com", Password: "rightpw1", FullName: "Dave"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, _, wrongPwErr := svc.Login(ctx, "dave@example.com", "wrongpw1")
	if wrongPwErr == nil {
		t.Fatalf("expected error for wrong password")
	}
	_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "whatever")
	if unknownErr == nil {
		t.Fatalf("expected error for unknown email")
	}

	if errorCode(t, wrongPwErr) != "INVALID_CREDENTIALS" || errorCode(t, unknownErr) != "INVALID_CREDENTIALS" {
		t.Fatalf("both failures must report INVALID_CREDENTIALS: %v / %v", wrongPwErr, unknownErr)
	}
	if wrongPwErr.Error() != unknownErr.Error() {
		t.Fatalf("failure messages must not distinguish cause: %q vs %q", wrongPwErr, unknownErr)
	}
}
