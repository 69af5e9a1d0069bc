package application

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
	"github.com/arsicorp/zenith-lab-robotics/pkg/auth"
)

// Registration carries the fields a new user signs up with.
type Registration struct {
	Username    string
	Password    string
	AccountType domain.AccountType
}

type AuthService struct {
	users    ports.UserStore
	profiles ports.ProfileStore
}

func NewAuthService(users ports.UserStore, profiles ports.ProfileStore) *AuthService {
	return &AuthService{users: users, profiles: profiles}
}

// Register creates a user with role USER, an empty profile, and returns a
// signed token. The account type defaults to PERSONAL when not given.
func (s *AuthService) Register(ctx context.Context, reg Registration) (string, *domain.User, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	if reg.Username == "" || len(reg.Password) < 8 {
		return "", nil, ErrInvalidInput
	}
	if reg.AccountType == domain.NoRequirement {
		reg.AccountType = domain.AccountTypePersonal
	}
	if !reg.AccountType.Known() {
		return "", nil, ErrInvalidInput
	}

	existing, err := s.users.GetByUsername(ctx, reg.Username)
	if err != nil {
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return "", nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, reg.Username, string(hashed), "USER")
	if err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	profile := &domain.Profile{UserID: user.ID, AccountType: reg.AccountType}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return "", nil, fmt.Errorf("create profile: %w", err)
	}

	token, err := auth.GenerateToken(user.Username, user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Username, user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}
