package services

import (
	"context"
	"strings"
	"time"

	"blog-nest/cmd/api/auth"
	"blog-nest/cmd/api/dto"
	"blog-nest/cmd/api/trace"
	"blog-nest/internal/logger"
)

// SessionService issues and verifies session tokens. It implements auth.Verifier.
type SessionService struct {
	tokens *auth.SessionManager
}

func NewSessionService(tokens *auth.SessionManager) *SessionService {
	return &SessionService{tokens: tokens}
}

// Issue signs the posted claim. The claim is trusted as sent by the client.
func (s *SessionService) Issue(ctx context.Context, claim dto.IdentityClaimRequest) (string, time.Time, error) {
	email := strings.TrimSpace(claim.Email)
	if email == "" {
		return "", time.Time{}, auth.ErrMissingEmail
	}

	token, expiresAt, err := s.tokens.Issue(auth.Identity{Email: email})
	if err != nil {
		return "", time.Time{}, err
	}

	logger.InfoWithFields("session issued", logger.Fields{
		"email":      email,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
		"request_id": trace.RequestIDFromContext(ctx),
	})
	return token, expiresAt, nil
}

func (s *SessionService) Verify(token string) (auth.Identity, error) {
	return s.tokens.Verify(token)
}

func (s *SessionService) TTL() time.Duration {
	return s.tokens.TTL()
}
