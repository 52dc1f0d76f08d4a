package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/servtech/authd/internal/common"
)

func newService(t *testing.T, secret string, ttl time.Duration) *Service {
	t.Helper()
	s, err := NewService(secret, ttl)
	if err != nil {
		t.Fatalf("NewService error: %v", err)
	}
	return s
}

func TestNewService_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewService("", time.Hour)
	if !errors.Is(err, ErrNoSecret) {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	s := newService(t, "super-secret", time.Hour)
	id := Identity{ID: 3, Username: "alice1", Role: "user"}

	tok, err := s.Issue(id)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok == "" {
		t.Fatal("Issue returned empty token")
	}

	got, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != id {
		t.Fatalf("identity mismatch: got %+v want %+v", got, id)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	s := newService(t, "secret", -1*time.Second)

	tok, err := s.Issue(Identity{ID: 1, Username: "u1", Role: "user"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = s.Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newService(t, "right-secret", time.Hour).Issue(Identity{ID: 2, Username: "u2", Role: "admin"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = newService(t, "wrong-secret", time.Hour).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	s := newService(t, "k", time.Hour)
	for _, in := range []string{"", "not.a.jwt", "a.b"} {
		if _, err := s.Verify(in); !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("expected common.ErrInvalidToken for %q, got %v", in, err)
		}
	}
}

func TestVerify_RejectsUnsignedAlg(t *testing.T) {
	t.Parallel()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Identity: Identity{ID: 9, Username: "mallory", Role: "admin"},
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing with none: %v", err)
	}

	_, err = newService(t, "secret", time.Hour).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for alg=none token, got %v", err)
	}
}

func TestIssue_UniqueTokenIDs(t *testing.T) {
	t.Parallel()

	s := newService(t, "secret", time.Hour)
	id := Identity{ID: 1, Username: "u1", Role: "user"}

	a, err := s.Issue(id)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	b, err := s.Issue(id)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct tokens for repeated issuance")
	}
}
