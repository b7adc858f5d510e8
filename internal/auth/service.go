package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/royalstarlog/freightdesk-backend/pkg/auth"
	"github.com/royalstarlog/freightdesk-backend/pkg/config"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
	"github.com/royalstarlog/freightdesk-backend/pkg/security"
)

type sessionManager interface {
	Start(ctx context.Context, accessID, email string) error
	Revoke(ctx context.Context, accessID string) error
}

// Service exposes the back-office login boundary. Credentials are injected
// through configuration; the rest of the system never authenticates and
// trusts the middleware check upstream.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, accessID string) error
}

// LoginResult carries the minted token back to the caller.
type LoginResult struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type service struct {
	users    map[string]string
	jwtCfg   config.JWTConfig
	sessions sessionManager
	now      func() time.Time
}

// NewService parses the configured credential pairs and builds the auth
// service. Users is a semicolon-separated list of email:argon2id-hash pairs.
func NewService(cfg config.AuthConfig, jwtCfg config.JWTConfig, sessions sessionManager) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}

	users, err := parseUsers(cfg.Users)
	if err != nil {
		return nil, err
	}

	return &service{
		users:    users,
		jwtCfg:   jwtCfg,
		sessions: sessions,
		now:      time.Now,
	}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	hash, ok := s.users[email]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	match, err := security.VerifyPassword(password, hash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !match {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now()
	jti := uuid.NewString()
	token, err := auth.MintAccessToken(s.jwtCfg, now, auth.AccessTokenPayload{Email: email, JTI: jti})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	if err := s.sessions.Start(ctx, jti, email); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "start session")
	}

	return &LoginResult{
		Token:     token,
		Email:     email,
		ExpiresAt: now.Add(time.Duration(s.jwtCfg.ExpirationMinutes) * time.Minute),
	}, nil
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id missing")
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

func parseUsers(raw string) (map[string]string, error) {
	users := map[string]string{}
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		idx := strings.Index(entry, ":")
		if idx <= 0 || idx == len(entry)-1 {
			return nil, fmt.Errorf("malformed credential entry, want email:hash")
		}
		email := strings.ToLower(strings.TrimSpace(entry[:idx]))
		users[email] = strings.TrimSpace(entry[idx+1:])
	}
	return users, nil
}
