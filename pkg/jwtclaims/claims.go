package jwtclaims

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedToken is returned when the token does not have the
	// three-segment JWT structure or its payload cannot be decoded.
	ErrMalformedToken = errors.New("malformed token")
)

// Claims holds the token payload fields the client cares about.
// The backend omits the user identifier from the login profile payload,
// so it is recovered from the token claims instead.
type Claims struct {
	Subject    string `json:"sub"`
	Identifier string `json:"cpf"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	ExpiresAt  int64  `json:"exp"`
	IssuedAt   int64  `json:"iat"`
}

// Decode extracts the claims from a JWT without verifying its signature.
// The client holds no signing key; the token is trusted because it was just
// received over the authenticated login channel. Never use this to make
// authorization decisions.
func Decode(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(parts))
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return Claims{}, errors.Join(ErrMalformedToken, err)
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, errors.Join(ErrMalformedToken, err)
	}

	return claims, nil
}

// decodeSegment handles both padded and unpadded base64url encodings,
// since issuers differ on padding.
func decodeSegment(segment string) ([]byte, error) {
	if data, err := base64.RawURLEncoding.DecodeString(segment); err == nil {
		return data, nil
	}
	return base64.URLEncoding.DecodeString(segment)
}
