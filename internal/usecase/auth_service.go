package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/volleyverse/fantasy-volley/internal/domain/user"
	"github.com/volleyverse/fantasy-volley/internal/platform/id"
)

const minPasswordLength = 6

// TokenManager issues and verifies access tokens for authenticated
// sessions.
type TokenManager interface {
	Issue(principal user.Principal, issuedAt time.Time) (string, time.Time, error)
	Verify(token string) (user.Principal, error)
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      user.User
}

type AuthService struct {
	userRepo   user.Repository
	tokens     TokenManager
	idGen      id.Generator
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(userRepo user.Repository, tokens TokenManager, idGen id.Generator, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		idGen:      idGen,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

// SignUp registers a new account and returns a fresh access token.
func (s *AuthService) SignUp(ctx context.Context, email, name, password string) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.SignUp")
	defer span.End()

	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return AuthResult{}, fmt.Errorf("%w: email, name and password are required", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return AuthResult{}, fmt.Errorf("%w: Password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	_, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("check existing account: %w", err)
	}
	if exists {
		return AuthResult{}, fmt.Errorf("%w: Email already registered", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate user id: %w", err)
	}

	item := user.User{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return AuthResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.userRepo.Insert(ctx, item); err != nil {
		return AuthResult{}, fmt.Errorf("insert account: %w", err)
	}

	return s.issueToken(item)
}

// SignIn authenticates by email and password. It reports the same
// error for unknown accounts and wrong passwords.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.SignIn")
	defer span.End()

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("get account by email: %w", err)
	}
	if !exists {
		return AuthResult{}, fmt.Errorf("%w: Invalid email or password", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(item.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, fmt.Errorf("%w: Invalid email or password", ErrUnauthorized)
	}

	return s.issueToken(item)
}

// VerifyAccessToken resolves a bearer token to the account it was
// issued for. Tokens for deleted accounts are rejected.
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.VerifyAccessToken")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: access token is required", ErrUnauthorized)
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	}

	item, exists, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return user.Principal{}, fmt.Errorf("get account by id: %w", err)
	}
	if !exists {
		return user.Principal{}, fmt.Errorf("%w: account no longer exists", ErrUnauthorized)
	}

	return user.Principal{
		UserID: item.ID,
		Email:  item.Email,
		Name:   item.Name,
	}, nil
}

func (s *AuthService) issueToken(item user.User) (AuthResult, error) {
	principal := user.Principal{
		UserID: item.ID,
		Email:  item.Email,
		Name:   item.Name,
	}

	token, expiresAt, err := s.tokens.Issue(principal, s.now())
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue access token: %w", err)
	}

	return AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      item,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
