package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestValidator_FirstViolationWins(t *testing.T) {
	v := NewValidator()

	req := signUpRequest{Email: "not-an-email", Password: "short", Nickname: "x"}
	err := v.Validate(&req)

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
	// Fields validate in declaration order, so the email error comes first.
	if he.Message != "email must be a valid email" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestValidator_ValidRequestPasses(t *testing.T) {
	v := NewValidator()

	req := signUpRequest{Email: "alice@example.com", Password: "s3cretpass", Nickname: "alice"}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestValidator_OptionalPassword(t *testing.T) {
	v := NewValidator()

	// Empty password is allowed on modification; a short one is not.
	if err := v.Validate(&modifyRequest{Nickname: "nick"}); err != nil {
		t.Fatalf("empty password should pass: %v", err)
	}
	if err := v.Validate(&modifyRequest{Nickname: "nick", Password: "short"}); err == nil {
		t.Fatalf("short password should fail")
	}
}
