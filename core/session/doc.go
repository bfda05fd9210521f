// Package session owns the client-side session lifecycle: token acquisition,
// persistence, expiry-driven auto sign-out, and the hand-off of the current
// token to the outgoing-request gate.
//
// # State Machine
//
// A Manager starts in the Loading state and reaches a terminal state once
// Restore completes:
//
//	Loading -> Anonymous       (no or invalid persisted record)
//	Loading -> Authenticated   (valid unexpired persisted record)
//	Anonymous -> Authenticated (successful SignIn)
//	Authenticated -> Anonymous (SignOut, or expiry timer)
//
// Anonymous and Authenticated are mutually exclusive; the token and expiry
// are set if and only if the state is Authenticated. No transition leads back
// to Loading.
//
// # Basic Usage
//
//	store, err := bbolt.Open(path, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	gate := authgate.New(authgate.WithPublicPaths("/Auth/login", "/register"))
//	api := nebulo.NewClient(cfg.BaseURL, nebulo.WithTransport(gate))
//
//	manager := session.NewManager(store, api.Auth, api.Auth, gate,
//		session.WithTTL(30*time.Minute),
//	)
//	manager.Restore(ctx)
//
//	if err := manager.SignIn(ctx, session.Credentials{Email: email, Password: pass}); err != nil {
//		// show the normalized message to the user
//	}
//
// # Persistence Semantics
//
// The persisted record is three independent keys (token, profile JSON, expiry
// epoch milliseconds) written sequentially at sign-in and removed together at
// sign-out. There is no transactional guarantee across the keys; Restore
// requires all three present with a numeric, future expiry and otherwise
// discards the record. Store failures are logged and swallowed: the in-memory
// transition always completes, trading persisted durability for current
// usability.
//
// # Expiry
//
// The session duration is a fixed client-side constant (DefaultTTL) rather
// than server-supplied. A single timer, obtained from the injectable Clock,
// fires the sign-out path when the window elapses; every sign-in or
// restoration cancels the prior timer before scheduling a new one. Restoring
// an already-expired record signs out synchronously instead of arming a
// zero-delay timer.
package session
