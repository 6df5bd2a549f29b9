package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

var testUser = &domain.User{
	ID:         7,
	Username:   "alice",
	IsAdmin:    false,
	IsSupplier: true,
	IsCustomer: false,
}

func testCodec() *Codec {
	return NewCodec([]byte("test-secret"), 20*time.Minute)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := testCodec()
	now := time.Now().UTC()

	token, err := codec.Encode(testUser, now)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	claims, err := codec.Resolve(token, now)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if claims.Subject != "alice" || claims.UserID != 7 {
		t.Fatalf("unexpected identity: %s/%d", claims.Subject, claims.UserID)
	}
	if claims.IsAdmin || !claims.IsSupplier || claims.IsCustomer {
		t.Fatalf("role flags not preserved: %+v", claims)
	}
	if got := claims.ExpiresAt.Time; !got.Equal(now.Add(20 * time.Minute).Truncate(time.Second)) {
		t.Fatalf("unexpected expiry: %v", got)
	}
}

func TestCodec_TamperedPayload(t *testing.T) {
	codec := testCodec()
	token, err := codec.Encode(testUser, time.Now().UTC())
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	// Flip one bit in every payload byte position in turn; no variant may
	// ever decode into claims.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	// The final base64 character carries unused padding bits that lenient
	// decoders ignore, so it is excluded.
	payload := []byte(parts[1])
	for i := 0; i < len(payload)-1; i++ {
		mutated := make([]byte, len(payload))
		copy(mutated, payload)
		mutated[i] ^= 0x01
		tampered := parts[0] + "." + string(mutated) + "." + parts[2]
		if tampered == token {
			continue
		}
		if _, err := codec.Decode(tampered); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("byte %d: expected ErrInvalidToken, got %v", i, err)
		}
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	token, err := testCodec().Encode(testUser, time.Now().UTC())
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	other := NewCodec([]byte("a-different-secret"), 20*time.Minute)
	if _, err := other.Decode(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_WrongAlgorithm(t *testing.T) {
	codec := testCodec()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"sub": "alice",
		"id":  7,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := codec.Decode(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS384, got %v", err)
	}
}

func TestCodec_Garbage(t *testing.T) {
	if _, err := testCodec().Decode("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestResolve_MissingIdentity(t *testing.T) {
	codec := testCodec()

	// Valid signature, no subject.
	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  7,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := codec.Resolve(noSub, time.Now()); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing subject, got %v", err)
	}

	// Valid signature, no user id.
	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := codec.Resolve(noID, time.Now()); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing user id, got %v", err)
	}
}

func TestResolve_MissingExpiry(t *testing.T) {
	codec := testCodec()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"id":  7,
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := codec.Resolve(token, time.Now()); !errors.Is(err, domain.ErrMissingExpiry) {
		t.Fatalf("expected ErrMissingExpiry, got %v", err)
	}
}

func TestResolve_ExpiryBoundary(t *testing.T) {
	codec := testCodec()
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiry := issued.Add(20 * time.Minute)

	token, err := codec.Encode(testUser, issued)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	// One second before expiry the token still resolves.
	if _, err := codec.Resolve(token, expiry.Add(-time.Second)); err != nil {
		t.Fatalf("expected success just before expiry, got %v", err)
	}

	// Exactly at expiry it is already expired.
	if _, err := codec.Resolve(token, expiry); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at the expiry instant, got %v", err)
	}

	if _, err := codec.Resolve(token, expiry.Add(time.Hour)); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired after expiry, got %v", err)
	}
}
