package usecase_test

import (
	"context"
	"errors"
	. "github.com/eletrofluxo/storefront/internal/usecase"
	"testing"

	domainErrors "github.com/eletrofluxo/storefront/internal/domain/errors"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	testhelpers "github.com/eletrofluxo/storefront/internal/test"
)

func newAuthUseCase() (*AuthUseCase, *testhelpers.UserRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
	return uc, users
}

func TestRegisterStoresCustomer(t *testing.T) {
	uc, users := newAuthUseCase()

	usr, token, err := uc.Register(context.Background(), " Cliente@Example.COM ", "Maria", "segredo")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}
	if usr.Email != "cliente@example.com" {
		t.Fatalf("expected normalized email, got %q", usr.Email)
	}
	if usr.Role != model.RoleCustomer {
		t.Fatalf("expected customer role, got %q", usr.Role)
	}

	stored, err := users.GetByEmail(context.Background(), "cliente@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.PasswordHash != "hash:segredo" {
		t.Fatalf("expected hashed password, got %q", stored.PasswordHash)
	}
}

func TestRegisterValidation(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "not-an-email", "Maria", "x"); !errors.Is(err, domainErrors.ErrInvalidEmail) {
		t.Fatalf("expected invalid email, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "a@b.co", "", "x"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty name, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "a@b.co", "Maria", ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty password, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "a@b.co", "Maria", "x"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "a@b.co", "Outra", "y"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	uc, _ := newAuthUseCase()
	if _, _, err := uc.Register(context.Background(), "a@b.co", "Maria", "segredo"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, token, err := uc.Authenticate(context.Background(), "A@B.CO", "segredo"); err != nil || token != "token" {
		t.Fatalf("expected successful login, got token=%q err=%v", token, err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "a@b.co", "errada"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "nobody@b.co", "segredo"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown account, got %v", err)
	}
}

func TestParseTokenDelegatesToStrategy(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, model.Role, error) {
		return 99, model.RoleAdmin, nil
	}}
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, strategy)

	id, role, err := uc.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 || role != model.RoleAdmin {
		t.Fatalf("unexpected identity %d/%q", id, role)
	}

	if _, _, err := uc.ParseToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}
