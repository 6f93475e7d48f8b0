package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/oldthorntonians/matchday/internal/dependencies/clock"
	"github.com/oldthorntonians/matchday/internal/dependencies/random"
	"github.com/oldthorntonians/matchday/internal/model"
	"github.com/oldthorntonians/matchday/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const (
	// UserIDLength is the length of generated user ids (after the prefix)
	UserIDLength = 16
	// IDAlphabet is the characters used in generated ids
	IDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Claims are the JWT claims carried by a bearer token
type Claims struct {
	UserID model.UserID `json:"userId"`
	Admin  bool         `json:"admin"`
	jwt.RegisteredClaims
}

// Config holds configuration for the auth service
type Config struct {
	// Secret is the HS256 shared secret used to sign tokens
	Secret string
	// TokenDuration is how long issued tokens stay valid
	TokenDuration time.Duration
	// AdminEmails lists addresses that are granted the admin flag at
	// registration time
	AdminEmails []string
}

// DefaultConfig returns default auth configuration (without a secret)
func DefaultConfig() Config {
	return Config{
		TokenDuration: 24 * time.Hour,
	}
}

// Service handles user registration, login and bearer-token verification
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random

	secret        []byte
	tokenDuration time.Duration
	adminEmails   map[string]bool
}

// New creates a new auth service
func New(storage storage.Storage, clk clock.Clock, rnd random.Random, cfg Config) *Service {
	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = DefaultConfig().TokenDuration
	}

	adminEmails := make(map[string]bool, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		adminEmails[normalizeEmail(email)] = true
	}

	return &Service{
		storage:       storage,
		clock:         clk,
		random:        rnd,
		secret:        []byte(cfg.Secret),
		tokenDuration: cfg.TokenDuration,
		adminEmails:   adminEmails,
	}
}

// Register creates a new user account and returns the user with a signed token
func (s *Service) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	_, err := s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, "", model.ErrEmailExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:           model.UserID("u_" + s.random.String(UserIDLength, IDAlphabet)),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Admin:        s.adminEmails[email],
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user by email and password and returns a signed token
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.storage.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser returns the user with the given id
func (s *Service) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// GenerateToken signs a JWT for the given user
func (s *Service) GenerateToken(user *model.User) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		UserID: user.ID,
		Admin:  user.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies a bearer token against the shared secret and
// returns its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
