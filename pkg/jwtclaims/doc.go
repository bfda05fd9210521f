// Package jwtclaims decodes JWT payloads without signature verification.
//
// The NebuloHub login endpoint returns a signed token whose claims carry the
// user identifier that the profile payload omits. The client recovers that
// identifier locally instead of issuing a second network call. Because no
// signing key is available on the device, the signature is not (and cannot
// be) verified here; the server remains the authority on token validity.
//
// Usage:
//
//	claims, err := jwtclaims.Decode(token)
//	if err != nil {
//		// malformed token: proceed without the identifier
//	}
//	user.ExternalID = claims.Identifier
package jwtclaims
