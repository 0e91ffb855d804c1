package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"taskmanager/internal/domain"
	"taskmanager/internal/errors"
	"taskmanager/internal/repository/sqlite"

	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = time.Hour

// tokenReuseWindow is the minimum remaining validity for an existing
// token to be handed out again instead of minting a new one.
const tokenReuseWindow = 60 * time.Second

// TokenService is the identity collaborator: it verifies credentials,
// issues opaque bearer tokens and resolves tokens back to callers. Task
// operations never touch credential material themselves.
type TokenService struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
	ttl    time.Duration
}

// NewTokenService creates a new TokenService instance.
func NewTokenService(repo sqlite.Repository, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		repo:   repo,
		mapper: domain.NewMapper(),
		ttl:    ttl,
	}
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Authenticate verifies a username/password pair and returns the matching
// user. Unknown users and wrong passwords both return nil without error
// so the shell can answer with a uniform authentication failure.
func (s *TokenService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	dbUser, err := s.repo.GetUser(ctx, username)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}

	user := s.mapper.User.FromDatabase(*dbUser)
	return &user, nil
}

// IssueToken returns a bearer token for the user, reusing the current one
// while it still has at least a minute of validity left.
func (s *TokenService) IssueToken(ctx context.Context, user *domain.User) (string, error) {
	now := time.Now().UTC()

	if user.Token != nil && user.TokenExpiration != nil && user.TokenExpiration.After(now.Add(tokenReuseWindow)) {
		return *user.Token, nil
	}

	token, err := newToken()
	if err != nil {
		return "", errors.NewDatabaseError("generate token", err)
	}
	expiry := now.Add(s.ttl)

	user.Token = &token
	user.TokenExpiration = &expiry

	dbUser := s.mapper.User.ToDatabase(*user)
	if err := s.repo.SaveUserToken(ctx, &dbUser); err != nil {
		return "", err
	}

	return token, nil
}

// RevokeToken invalidates the user's current token immediately.
func (s *TokenService) RevokeToken(ctx context.Context, user *domain.User) error {
	expired := time.Now().UTC().Add(-time.Second)
	user.TokenExpiration = &expired

	dbUser := s.mapper.User.ToDatabase(*user)
	return s.repo.SaveUserToken(ctx, &dbUser)
}

// ResolveCaller resolves a bearer token to the caller identity it was
// issued for. Unknown and expired tokens return nil without error; the
// shell rejects those before any task operation runs.
func (s *TokenService) ResolveCaller(ctx context.Context, token string) (*domain.Caller, error) {
	if token == "" {
		return nil, nil
	}

	dbUser, err := s.repo.GetUserByToken(ctx, token)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if dbUser.TokenExpiration == nil || dbUser.TokenExpiration.Before(time.Now().UTC()) {
		return nil, nil
	}

	user := s.mapper.User.FromDatabase(*dbUser)
	caller := user.Caller()
	return &caller, nil
}

// ResolveUser resolves a bearer token to the full user record, for shell
// operations that act on the account itself (token revocation).
func (s *TokenService) ResolveUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	dbUser, err := s.repo.GetUserByToken(ctx, token)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if dbUser.TokenExpiration == nil || dbUser.TokenExpiration.Before(time.Now().UTC()) {
		return nil, nil
	}

	user := s.mapper.User.FromDatabase(*dbUser)
	return &user, nil
}

func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
