package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
)

type stubAuthRepo struct {
	byEmail map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *user
	r.byEmail[user.Email] = &clone
	return &clone, nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour, nil)

	user, err := svc.Register(context.Background(), "ops@example.com", "s3cret", "")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Errorf("role = %q, want default client", user.Role)
	}
	if user.PasswordHash == "s3cret" {
		t.Error("password stored in plaintext")
	}

	token, logged, err := svc.Login(context.Background(), "ops@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if logged.Email != "ops@example.com" {
		t.Errorf("email = %q", logged.Email)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["email"] != "ops@example.com" || claims["role"] != domain.RoleClient {
		t.Errorf("claims = %v", claims)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour, nil)

	if _, err := svc.Register(context.Background(), "ops@example.com", "s3cret", ""); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	_, _, err := svc.Login(context.Background(), "ops@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "test-secret", time.Hour, nil)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour, nil)

	if _, err := svc.Register(context.Background(), "ops@example.com", "pw", ""); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	_, err := svc.Register(context.Background(), "ops@example.com", "pw", "")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "test-secret", time.Hour, nil)

	_, err := svc.Register(context.Background(), "ops@example.com", "pw", "superuser")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCapabilities(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "test-secret", time.Hour, []string{"boss@dqexpress.com"})

	cases := []struct {
		name  string
		email string
		role  string
		want  bool
	}{
		{"admin role", "anyone@example.com", domain.RoleAdmin, true},
		{"allow-listed email", "boss@dqexpress.com", domain.RoleClient, true},
		{"plain client", "user@example.com", domain.RoleClient, false},
		{"case-sensitive match", "Boss@dqexpress.com", domain.RoleClient, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			caps := svc.Capabilities(tc.email, tc.role)
			if caps.CanManageAllShipments != tc.want || caps.CanViewAllShipments != tc.want {
				t.Errorf("Capabilities(%q, %q) = %+v, want %v", tc.email, tc.role, caps, tc.want)
			}
		})
	}
}
