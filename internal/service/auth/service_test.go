package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ujjawall12/HackOnHills7.0/internal/domain"
	"github.com/Ujjawall12/HackOnHills7.0/internal/repository"
	"github.com/Ujjawall12/HackOnHills7.0/pkg/crypto"
	"github.com/Ujjawall12/HackOnHills7.0/pkg/token"
)

func newTokens() token.Service {
	return token.NewService("service-test-secret", 7*24*time.Hour)
}

func TestSignupIssuesValidatableToken(t *testing.T) {
	var created *domain.User
	repo := userRepoMock{
		createFunc: func(_ context.Context, user *domain.User) error {
			if user.ID == "" {
				t.Fatalf("expected generated user id")
			}
			if user.Email != "ana@x.com" {
				t.Fatalf("unexpected email: %s", user.Email)
			}
			if len(user.PasswordHash) == 0 {
				t.Fatalf("expected password hash to be set")
			}
			if crypto.CheckPassword(user.PasswordHash, "wrong") {
				t.Fatalf("hash verifies wrong password")
			}
			created = user
			return nil
		},
	}
	tokens := newTokens()
	svc := New(repo, tokens, newLogger())

	user, signed, err := svc.Signup(context.Background(), "Ana", "ana@x.com", "secret1")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if created == nil || user.ID != created.ID {
		t.Fatalf("expected created user returned")
	}
	subject, err := tokens.Validate(signed)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if subject != user.ID {
		t.Fatalf("token subject %q, want %q", subject, user.ID)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := userRepoMock{
		createFunc: func(context.Context, *domain.User) error {
			return repository.ErrEmailTaken
		},
	}
	svc := New(repo, newTokens(), newLogger())
	if _, _, err := svc.Signup(context.Background(), "Ana", "ana@x.com", "secret1"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	hash, err := crypto.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := userRepoMock{
		getByEmail: func(_ context.Context, email string) (*domain.User, error) {
			if email != "ana@x.com" {
				t.Fatalf("unexpected email lookup: %s", email)
			}
			return &domain.User{ID: "user-1", Name: "Ana", Email: email, PasswordHash: hash}, nil
		},
	}
	tokens := newTokens()
	svc := New(repo, tokens, newLogger())

	user, signed, err := svc.Login(context.Background(), "ana@x.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "user-1" {
		t.Fatalf("unexpected user: %s", user.ID)
	}
	if subject, err := tokens.Validate(signed); err != nil || subject != "user-1" {
		t.Fatalf("issued token invalid: subject=%q err=%v", subject, err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	hash, err := crypto.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	unknownEmail := userRepoMock{}
	wrongPassword := userRepoMock{
		getByEmail: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
		},
	}

	for name, repo := range map[string]userRepoMock{
		"unknown email":  unknownEmail,
		"wrong password": wrongPassword,
	} {
		svc := New(repo, newTokens(), newLogger())
		_, _, err := svc.Login(context.Background(), "ana@x.com", "not-secret1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
}

func TestAuthorizeResolvesUser(t *testing.T) {
	tokens := newTokens()
	signed, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	repo := userRepoMock{
		getByID: func(_ context.Context, id string) (*domain.User, error) {
			if id != "user-1" {
				t.Fatalf("unexpected id lookup: %s", id)
			}
			return &domain.User{ID: id, Email: "ana@x.com"}, nil
		},
	}
	svc := New(repo, tokens, newLogger())

	user, err := svc.Authorize(context.Background(), signed)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if user.ID != "user-1" {
		t.Fatalf("unexpected user: %s", user.ID)
	}
}

func TestAuthorizeRejections(t *testing.T) {
	tokens := newTokens()
	signed, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	foreign, err := token.NewService("another-secret", time.Hour).Issue("user-1")
	if err != nil {
		t.Fatalf("issue foreign: %v", err)
	}

	cases := map[string]string{
		"empty token":    "",
		"garbage token":  "not.a.jwt",
		"foreign signer": foreign,
		"vanished user":  signed, // repo below knows no users
	}
	svc := New(userRepoMock{}, tokens, newLogger())
	for name, raw := range cases {
		if _, err := svc.Authorize(context.Background(), raw); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("%s: expected ErrUnauthenticated, got %v", name, err)
		}
	}
}

func TestAddOperatingSystemReturnsUpdatedList(t *testing.T) {
	repo := userRepoMock{
		appendOSFunc: func(_ context.Context, userID, name, customString string) ([]domain.OperatingSystem, error) {
			if userID != "user-1" || name != "Win11" || customString != "build-22H2" {
				t.Fatalf("unexpected append: %s %s %s", userID, name, customString)
			}
			return []domain.OperatingSystem{{Name: "Win11", CustomString: "build-22H2"}}, nil
		},
	}
	svc := New(repo, newTokens(), newLogger())

	entries, err := svc.AddOperatingSystem(context.Background(), "user-1", "Win11", "build-22H2")
	if err != nil {
		t.Fatalf("add operating system: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Win11" {
		t.Fatalf("unexpected list: %+v", entries)
	}
}
