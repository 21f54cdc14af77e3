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
	"time"
)

// DefaultAssertionTTL is the maximum accepted age of a session assertion's
// issued_at. The provider mints a fresh assertion on every sign-in, so a
// short window is enough.
const DefaultAssertionTTL = 5 * time.Minute

// ValidateSessionAssertion checks an identity assertion handed over by the
// hosted auth provider. The assertion is query-encoded (uid, email,
// display_name, avatar_url, issued_at, sig); sig is HMAC-SHA256 over the
// remaining pairs sorted and newline-joined, keyed by a derivation of the
// shared provider secret.
//
// maxAge bounds the accepted age of issued_at; <= 0 uses DefaultAssertionTTL.
func ValidateSessionAssertion(assertion string, providerSecret string, maxAge time.Duration) (url.Values, error) {
	if maxAge <= 0 {
		maxAge = DefaultAssertionTTL
	}

	vals, err := url.ParseQuery(assertion)
	if err != nil {
		return nil, fmt.Errorf("invalid assertion format: %w", err)
	}

	receivedSig := vals.Get("sig")
	if receivedSig == "" {
		return nil, fmt.Errorf("sig is missing from assertion")
	}

	issuedAtStr := vals.Get("issued_at")
	if issuedAtStr == "" {
		return nil, fmt.Errorf("issued_at is missing from assertion")
	}
	issuedAtUnix, err := strconv.ParseInt(issuedAtStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("issued_at is not a valid unix timestamp")
	}
	issuedAt := time.Unix(issuedAtUnix, 0)
	if time.Since(issuedAt) > maxAge {
		return nil, fmt.Errorf("assertion expired: issued_at is %s old (max %s)", time.Since(issuedAt).Round(time.Second), maxAge)
	}
	// Reject issued_at from the future (clock skew tolerance 1 min)
	if issuedAt.After(time.Now().Add(1 * time.Minute)) {
		return nil, fmt.Errorf("issued_at is in the future")
	}

	var pairs []string
	for key, values := range vals {
		if key == "sig" {
			continue
		}
		for _, v := range values {
			pairs = append(pairs, fmt.Sprintf("%s=%s", key, v))
		}
	}
	sort.Strings(pairs)
	signedString := strings.Join(pairs, "\n")

	// signing key = HMAC-SHA256("SessionAssertion", provider_secret)
	signingKey := hmacSHA256([]byte("SessionAssertion"), []byte(providerSecret))
	sig := hmacSHA256(signingKey, []byte(signedString))
	calculatedSig := hex.EncodeToString(sig)

	if !hmac.Equal([]byte(calculatedSig), []byte(receivedSig)) {
		return nil, fmt.Errorf("invalid signature: assertion integrity check failed")
	}

	if vals.Get("uid") == "" {
		return nil, fmt.Errorf("uid is missing from assertion")
	}

	return vals, nil
}

func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}
