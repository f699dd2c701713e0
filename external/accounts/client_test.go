package accounts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gpbuil/fifa2026-new/internal/domain/user"
	"github.com/gpbuil/fifa2026-new/internal/usecase"
)

func principalWithID(id string) user.Principal {
	return user.Principal{UserID: id}
}

func newVerifier(t *testing.T, handler http.HandlerFunc, cacheTTL time.Duration, adminIDs ...string) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL:        server.URL,
		IntrospectPath: "/v1/auth/introspect",
		Timeout:        2 * time.Second,
		CacheTTL:       cacheTTL,
		AdminUserIDs:   adminIDs,
	})
}

func TestVerifyAccessToken_ActiveToken(t *testing.T) {
	t.Parallel()

	verifier := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/auth/introspect" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"active":true,"user_id":"u1","name":"Ana","email":"ana@example.com"}`))
	}, 0)

	principal, err := verifier.VerifyAccessToken(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal.UserID != "u1" || principal.Name != "Ana" {
		t.Fatalf("unexpected principal %+v", principal)
	}
	if principal.IsAdmin {
		t.Fatal("expected non-admin principal")
	}
}

func TestVerifyAccessToken_AdminOverrideFromConfig(t *testing.T) {
	t.Parallel()

	verifier := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"active":true,"user_id":"boss"}`))
	}, 0, "boss")

	principal, err := verifier.VerifyAccessToken(context.Background(), "tok-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !principal.IsAdmin {
		t.Fatal("expected configured admin id to be marked admin")
	}
}

func TestVerifyAccessToken_InactiveToken(t *testing.T) {
	t.Parallel()

	verifier := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"active":false}`))
	}, 0)

	if _, err := verifier.VerifyAccessToken(context.Background(), "tok-3"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifyAccessToken_DeniedStatus(t *testing.T) {
	t.Parallel()

	verifier := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, 0)

	if _, err := verifier.VerifyAccessToken(context.Background(), "tok-4"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifyAccessToken_EmptyToken(t *testing.T) {
	t.Parallel()

	verifier := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}, 0)

	if _, err := verifier.VerifyAccessToken(context.Background(), "   "); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifyAccessToken_CachesPrincipal(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	verifier := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"active":true,"user_id":"u1"}`))
	}, time.Minute)

	for i := 0; i < 3; i++ {
		if _, err := verifier.VerifyAccessToken(context.Background(), "tok-5"); err != nil {
			t.Fatalf("unexpected error on call %d: %v", i, err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single introspection call, got %d", got)
	}
}

func TestPrincipalCache_EvictsWhenFull(t *testing.T) {
	t.Parallel()

	cache := newPrincipalCache(time.Minute, 2)
	cache.Set("a", principalWithID("u1"))
	cache.Set("b", principalWithID("u2"))
	cache.Set("c", principalWithID("u3"))

	count := 0
	for _, key := range []string{"a", "b", "c"} {
		if _, ok := cache.Get(key); ok {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected cache to hold 2 entries after eviction, got %d", count)
	}
}

func TestHashToken_StableAndOpaque(t *testing.T) {
	t.Parallel()

	first := hashToken("secret-token")
	second := hashToken("secret-token")
	if first != second {
		t.Fatal("expected deterministic hash")
	}
	if first == "secret-token" || len(first) != 64 {
		t.Fatalf("expected 64-char hex digest, got %q", first)
	}
}
