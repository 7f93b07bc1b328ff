package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urbangrow/urbangrow/internal/domain"
	mongorepo "github.com/urbangrow/urbangrow/internal/repository/mongo"
	"github.com/urbangrow/urbangrow/internal/security"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var (
	// ErrEmailTaken is returned when signup hits an existing account.
	ErrEmailTaken = errors.New("user already exists with this email")
	// ErrInvalidCredentials covers unknown email and wrong password alike,
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserRepository is the persistence contract the auth service depends on.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// AuthResult is a signed token plus the public user projection.
type AuthResult struct {
	Token string
	User  domain.PublicUser
}

// AuthService handles signup and login
type AuthService struct {
	users  UserRepository
	tokens *security.TokenManager
}

// NewAuthService creates a new auth service
func NewAuthService(users UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Signup creates a new account with the password irreversibly hashed and
// returns a signed token. The email is case-normalized before storage.
func (s *AuthService) Signup(ctx context.Context, input domain.SignupRequest) (*AuthResult, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique index catches the signup race the existence check loses.
		if errors.Is(err, mongorepo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Login verifies credentials and returns a freshly signed token
func (s *AuthService) Login(ctx context.Context, input domain.LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// GetUserByID retrieves a user by its hex ID
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	return s.users.GetByID(ctx, oid)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
