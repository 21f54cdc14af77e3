package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

// buildAssertion assembles a provider assertion with a valid sig and the
// given issued_at.
func buildAssertion(secret string, issuedAt time.Time, extra map[string]string) string {
	params := url.Values{}
	params.Set("issued_at", strconv.FormatInt(issuedAt.Unix(), 10))
	for k, v := range extra {
		params.Set(k, v)
	}

	var pairs []string
	for key, values := range params {
		for _, v := range values {
			pairs = append(pairs, fmt.Sprintf("%s=%s", key, v))
		}
	}
	sort.Strings(pairs)
	signedString := strings.Join(pairs, "\n")

	signingKey := hmacSHA256([]byte("SessionAssertion"), []byte(secret))
	sig := hmacSHA256(signingKey, []byte(signedString))
	params.Set("sig", hex.EncodeToString(sig))

	return params.Encode()
}

func TestValidateSessionAssertion_Valid(t *testing.T) {
	secret := "test-provider-secret"

	assertion := buildAssertion(secret, time.Now().Add(-30*time.Second), map[string]string{
		"uid":          "prov-uid-123",
		"email":        "brand@example.com",
		"display_name": "Acme Cosmetics",
	})

	vals, err := ValidateSessionAssertion(assertion, secret, 5*time.Minute)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if vals.Get("uid") != "prov-uid-123" {
		t.Errorf("expected uid=prov-uid-123, got %s", vals.Get("uid"))
	}
	if vals.Get("email") != "brand@example.com" {
		t.Errorf("expected email to round-trip, got %s", vals.Get("email"))
	}
}

func TestValidateSessionAssertion_Expired(t *testing.T) {
	secret := "test-provider-secret"

	assertion := buildAssertion(secret, time.Now().Add(-10*time.Minute), map[string]string{
		"uid": "prov-uid-123", "email": "brand@example.com",
	})

	_, err := ValidateSessionAssertion(assertion, secret, 5*time.Minute)
	if err == nil {
		t.Fatal("expected error for expired assertion")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Errorf("expected 'expired' in error, got: %s", err.Error())
	}
}

func TestValidateSessionAssertion_FutureIssuedAt(t *testing.T) {
	secret := "test-provider-secret"

	assertion := buildAssertion(secret, time.Now().Add(5*time.Minute), map[string]string{
		"uid": "prov-uid-123", "email": "brand@example.com",
	})

	_, err := ValidateSessionAssertion(assertion, secret, 5*time.Minute)
	if err == nil {
		t.Fatal("expected error for future issued_at")
	}
	if !strings.Contains(err.Error(), "future") {
		t.Errorf("expected 'future' in error, got: %s", err.Error())
	}
}

func TestValidateSessionAssertion_DefaultMaxAge(t *testing.T) {
	secret := "test-provider-secret"

	assertion := buildAssertion(secret, time.Now().Add(-10*time.Second), map[string]string{
		"uid": "prov-uid-123", "email": "brand@example.com",
	})

	_, err := ValidateSessionAssertion(assertion, secret, 0)
	if err != nil {
		t.Fatalf("expected no error with default maxAge, got: %v", err)
	}
}

func TestValidateSessionAssertion_InvalidSignature(t *testing.T) {
	params := url.Values{}
	params.Set("issued_at", strconv.FormatInt(time.Now().Unix(), 10))
	params.Set("uid", "prov-uid-123")
	params.Set("sig", "deadbeef")

	_, err := ValidateSessionAssertion(params.Encode(), "test-provider-secret", 5*time.Minute)
	if err == nil {
		t.Fatal("expected error for invalid signature")
	}
}

func TestValidateSessionAssertion_WrongSecret(t *testing.T) {
	assertion := buildAssertion("secret-a", time.Now(), map[string]string{
		"uid": "prov-uid-123", "email": "brand@example.com",
	})

	_, err := ValidateSessionAssertion(assertion, "secret-b", 5*time.Minute)
	if err == nil {
		t.Fatal("expected error when validating with a different secret")
	}
}

func TestValidateSessionAssertion_MissingSig(t *testing.T) {
	params := url.Values{}
	params.Set("issued_at", strconv.FormatInt(time.Now().Unix(), 10))
	params.Set("uid", "prov-uid-123")

	_, err := ValidateSessionAssertion(params.Encode(), "secret", 5*time.Minute)
	if err == nil {
		t.Fatal("expected error for missing sig")
	}
}

func TestValidateSessionAssertion_MissingIssuedAt(t *testing.T) {
	params := url.Values{}
	params.Set("uid", "prov-uid-123")
	params.Set("sig", "somesig")

	_, err := ValidateSessionAssertion(params.Encode(), "secret", 5*time.Minute)
	if err == nil {
		t.Fatal("expected error for missing issued_at")
	}
}

func TestValidateSessionAssertion_MissingUID(t *testing.T) {
	secret := "test-provider-secret"

	assertion := buildAssertion(secret, time.Now(), map[string]string{
		"email": "brand@example.com",
	})

	_, err := ValidateSessionAssertion(assertion, secret, 5*time.Minute)
	if err == nil {
		t.Fatal("expected error for missing uid")
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "jwt-test-secret"
	brandID := uuid.New()

	token, err := GenerateJWT(secret, brandID, "brand@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if claims.BrandID != brandID {
		t.Errorf("brand id mismatch: %s vs %s", claims.BrandID, brandID)
	}
	if claims.Email != "brand@example.com" {
		t.Errorf("email mismatch: %s", claims.Email)
	}

	if _, err := ParseJWT("other-secret", token); err == nil {
		t.Error("expected parse failure with wrong secret")
	}
}

func TestHmacSHA256(t *testing.T) {
	key := []byte("test-key")
	data := []byte("test-data")

	result := hmacSHA256(key, data)

	h := hmac.New(sha256.New, key)
	h.Write(data)
	expected := h.Sum(nil)

	if !hmac.Equal(result, expected) {
		t.Error("hmacSHA256 result doesn't match expected")
	}
}
