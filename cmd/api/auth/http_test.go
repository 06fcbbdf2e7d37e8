package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type countingVerifier struct {
	calls    int
	identity Identity
	err      error
}

func (v *countingVerifier) Verify(token string) (Identity, error) {
	v.calls++
	return v.identity, v.err
}

func TestGateAuthorizeWithoutCookieSkipsVerifier(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := &countingVerifier{identity: Identity{Email: "a@x.com"}}
	gate := NewGate("", verifier)

	ginCtx, _ := newTestGinContext(nil)
	_, err := gate.Authorize(ginCtx)
	if !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if verifier.calls != 0 {
		t.Fatalf("expected verifier not to be called, got %d calls", verifier.calls)
	}
}

func TestGateAuthorizeEmptyCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := &countingVerifier{}
	gate := NewGate("token", verifier)

	ginCtx, _ := newTestGinContext(&http.Cookie{Name: "token", Value: ""})
	if _, err := gate.Authorize(ginCtx); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if verifier.calls != 0 {
		t.Fatalf("expected verifier not to be called")
	}
}

func TestGateAuthorizePassesVerifierResult(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name    string
		verify  *countingVerifier
		wantErr error
	}{
		{
			name:   "valid token",
			verify: &countingVerifier{identity: Identity{Email: "a@x.com"}},
		},
		{
			name:    "invalid token",
			verify:  &countingVerifier{err: ErrInvalidToken},
			wantErr: ErrInvalidToken,
		},
		{
			name:    "expired token",
			verify:  &countingVerifier{err: ErrExpiredToken},
			wantErr: ErrExpiredToken,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			gate := NewGate("token", testCase.verify)
			ginCtx, _ := newTestGinContext(&http.Cookie{Name: "token", Value: "abc"})

			identity, err := gate.Authorize(ginCtx)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected error %v, got %v", testCase.wantErr, err)
			}
			if testCase.verify.calls != 1 {
				t.Fatalf("expected one verifier call, got %d", testCase.verify.calls)
			}
			if err == nil && identity.Email != "a@x.com" {
				t.Fatalf("expected identity a@x.com, got %q", identity.Email)
			}
		})
	}
}

func TestAbortWithUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ginCtx, recorder := newTestGinContext(nil)
	AbortWithUnauthorized(ginCtx)

	if !ginCtx.IsAborted() {
		t.Fatalf("expected request to be aborted")
	}
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["error"] != "unauthorized access" {
		t.Fatalf("expected unauthorized access, got %q", body["error"])
	}
}

func TestCookieConfigDevelopment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := NewCookieConfig("", false, 30*24*time.Hour)

	ginCtx, recorder := newTestGinContext(nil)
	cfg.Set(ginCtx, "signed")

	header := recorder.Header().Get("Set-Cookie")
	for _, want := range []string{"token=signed", "Max-Age=2592000", "HttpOnly", "SameSite=Strict"} {
		if !strings.Contains(header, want) {
			t.Fatalf("expected %q in %q", want, header)
		}
	}
	if strings.Contains(header, "Secure") {
		t.Fatalf("expected no Secure flag outside production, got %q", header)
	}
}

func TestCookieConfigProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := NewCookieConfig("token", true, time.Hour)

	ginCtx, recorder := newTestGinContext(nil)
	cfg.Set(ginCtx, "signed")

	header := recorder.Header().Get("Set-Cookie")
	for _, want := range []string{"HttpOnly", "Secure", "SameSite=None"} {
		if !strings.Contains(header, want) {
			t.Fatalf("expected %q in %q", want, header)
		}
	}
}

func TestCookieConfigClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := NewCookieConfig("token", true, time.Hour)

	ginCtx, recorder := newTestGinContext(nil)
	cfg.Clear(ginCtx)

	header := recorder.Header().Get("Set-Cookie")
	for _, want := range []string{"token=", "Max-Age=0", "HttpOnly", "Secure", "SameSite=None"} {
		if !strings.Contains(header, want) {
			t.Fatalf("expected %q in %q", want, header)
		}
	}
}

func TestIdentityContextHelpers(t *testing.T) {
	if _, ok := IdentityFromContext(context.Background()); ok {
		t.Fatalf("expected no identity on empty context")
	}

	ctx := WithIdentity(context.Background(), Identity{Email: "a@x.com"})
	identity, ok := IdentityFromContext(ctx)
	if !ok || identity.Email != "a@x.com" {
		t.Fatalf("expected identity a@x.com, got %+v (ok=%v)", identity, ok)
	}
}

func newTestGinContext(cookie *http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	ginCtx, _ := gin.CreateTestContext(recorder)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		request.AddCookie(cookie)
	}
	ginCtx.Request = request

	return ginCtx, recorder
}
