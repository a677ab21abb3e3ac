package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
)

// AuthService implements registration, login and the admin gate.
type AuthService struct {
	repo        ports.AuthRepository
	jwtSecret   string
	tokenTTL    time.Duration
	adminEmails map[string]struct{}
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration, adminEmails []string) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	allow := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		allow[e] = struct{}{}
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, adminEmails: allow}
}

func (s *AuthService) Register(ctx context.Context, email, password, role string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleClient
	}
	if role != domain.RoleAdmin && role != domain.RoleClient {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Capabilities derives the advisory permission set for a session: a user is
// an admin when their role claim says so or their email exactly matches an
// allow-list entry. The comparison is case-sensitive on purpose; the
// allow-list exists only as an operator bootstrap until roles are assigned.
func (s *AuthService) Capabilities(email, role string) domain.Capabilities {
	admin := role == domain.RoleAdmin
	if !admin {
		_, admin = s.adminEmails[email]
	}
	return domain.Capabilities{
		CanManageAllShipments: admin,
		CanViewAllShipments:   admin,
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
