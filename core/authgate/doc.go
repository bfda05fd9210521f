// Package authgate provides bearer-token decoration for outgoing API calls.
//
// The gate is an http.RoundTripper meant to be installed as the transport of
// the API client's http.Client. The session manager pushes the current token
// into the gate on every authentication transition; the gate then attaches it
// as "Authorization: Bearer <token>" to every request whose path does not
// match the public-endpoint allowlist (login, registration).
//
// Usage:
//
//	gate := authgate.New(authgate.WithPublicPaths("/Auth/login", "/register"))
//	client := &http.Client{Transport: gate}
//	...
//	gate.SetToken(token) // after sign-in
//	gate.SetToken("")    // after sign-out
package authgate
