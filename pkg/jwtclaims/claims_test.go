package jwtclaims_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebulohub/mobile/pkg/jwtclaims"
)

// buildToken assembles an unsigned JWT with the given payload object.
// The signature segment is garbage on purpose: Decode must not care.
func buildToken(t *testing.T, payload any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".sig"
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("extracts identifier claim", func(t *testing.T) {
		t.Parallel()

		token := buildToken(t, map[string]any{
			"sub":   "maria@nebulohub.dev",
			"cpf":   "111.111.111-11",
			"email": "maria@nebulohub.dev",
			"role":  "user",
			"exp":   1767225600,
		})

		claims, err := jwtclaims.Decode(token)
		require.NoError(t, err)

		assert.Equal(t, "111.111.111-11", claims.Identifier)
		assert.Equal(t, "maria@nebulohub.dev", claims.Email)
		assert.Equal(t, "user", claims.Role)
		assert.Equal(t, int64(1767225600), claims.ExpiresAt)
	})

	t.Run("tolerates padded base64url payload", func(t *testing.T) {
		t.Parallel()

		body, err := json.Marshal(map[string]any{"cpf": "222.222.222-22"})
		require.NoError(t, err)

		token := "eyJhbGciOiJIUzI1NiJ9." + base64.URLEncoding.EncodeToString(body) + ".sig"

		claims, err := jwtclaims.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "222.222.222-22", claims.Identifier)
	})

	t.Run("missing claims decode to zero values", func(t *testing.T) {
		t.Parallel()

		claims, err := jwtclaims.Decode(buildToken(t, map[string]any{"sub": "x"}))
		require.NoError(t, err)
		assert.Empty(t, claims.Identifier)
		assert.Zero(t, claims.ExpiresAt)
	})

	t.Run("rejects token without three segments", func(t *testing.T) {
		t.Parallel()

		_, err := jwtclaims.Decode("just-a-string")
		assert.ErrorIs(t, err, jwtclaims.ErrMalformedToken)

		_, err = jwtclaims.Decode("a.b")
		assert.ErrorIs(t, err, jwtclaims.ErrMalformedToken)
	})

	t.Run("rejects non-base64 payload", func(t *testing.T) {
		t.Parallel()

		_, err := jwtclaims.Decode("a.!!!not-base64!!!.c")
		assert.ErrorIs(t, err, jwtclaims.ErrMalformedToken)
	})

	t.Run("rejects non-JSON payload", func(t *testing.T) {
		t.Parallel()

		payload := base64.RawURLEncoding.EncodeToString([]byte("not json"))
		_, err := jwtclaims.Decode("a." + payload + ".c")
		assert.ErrorIs(t, err, jwtclaims.ErrMalformedToken)
	})
}
