package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestManager(t *testing.T) *SessionManager {
	t.Helper()
	manager, err := NewSessionManager("service-secret", "blog-nest", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return manager
}

func TestNewSessionManagerRequiresSecret(t *testing.T) {
	manager, err := NewSessionManager("", "blog-nest", time.Hour)
	if err == nil {
		t.Fatalf("expected error when secret is empty")
	}
	if manager != nil {
		t.Fatalf("expected nil manager when secret is empty")
	}
}

func TestNewSessionManagerDefaultsTTL(t *testing.T) {
	manager, err := NewSessionManager("secret", "blog-nest", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.TTL() != 30*24*time.Hour {
		t.Fatalf("expected default ttl of 30 days, got %s", manager.TTL())
	}
}

func TestSessionManagerIssueAndVerifyRoundTrip(t *testing.T) {
	manager := newTestManager(t)

	for _, email := range []string{"a@x.com", "someone.else+tag@example.org", "guest"} {
		token, expiresAt, err := manager.Issue(Identity{Email: email})
		if err != nil {
			t.Fatalf("unexpected issue error: %v", err)
		}
		if until := time.Until(expiresAt); until <= 0 || until > time.Hour {
			t.Fatalf("expected expiry within the ttl, got %s", until)
		}

		identity, err := manager.Verify(token)
		if err != nil {
			t.Fatalf("unexpected verify error: %v", err)
		}
		if identity.Email != email {
			t.Fatalf("expected email %q, got %q", email, identity.Email)
		}
	}
}

func TestSessionManagerIssueRejectsEmptyEmail(t *testing.T) {
	manager := newTestManager(t)

	_, _, err := manager.Issue(Identity{Email: "   "})
	if !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
}

func TestSessionManagerVerifyExpiredToken(t *testing.T) {
	manager := newTestManager(t)
	issuedAt := time.Now().Add(-2 * time.Hour)
	manager.now = func() time.Time { return issuedAt }

	token, _, err := manager.Issue(Identity{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	manager.now = time.Now
	_, err = manager.Verify(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestSessionManagerVerifyRejectsInvalidSignature(t *testing.T) {
	manager := newTestManager(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"iss":   "blog-nest",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := forged.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("failed to sign forged token: %v", err)
	}

	_, err = manager.Verify(tokenString)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSessionManagerVerifyRejectsTamperedPayload(t *testing.T) {
	manager := newTestManager(t)

	token, _, err := manager.Issue(Identity{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}

	other, _, err := manager.Issue(Identity{Email: "b@x.com"})
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	otherParts := strings.Split(other, ".")
	tampered := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err = manager.Verify(tampered)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSessionManagerVerifyRejectsMalformedToken(t *testing.T) {
	manager := newTestManager(t)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := manager.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestSessionManagerVerifyRejectsOtherAlgorithms(t *testing.T) {
	manager := newTestManager(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "a@x.com",
		"iss":   "blog-nest",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(manager.secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := manager.Verify(tokenString); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSessionManagerVerifyRejectsClaimWithoutEmail(t *testing.T) {
	manager := newTestManager(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "blog-nest",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(manager.secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := manager.Verify(tokenString); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
