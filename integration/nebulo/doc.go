// Package nebulo is the HTTP client for the NebuloHub platform API.
//
// The client is a thin typed layer over the remote REST endpoints: users,
// startups, skills, ratings and skill associations, plus the public auth
// endpoints. It holds no authentication state itself; install a
// core/authgate Gate as its transport and the gate decorates every
// protected request with the current bearer token:
//
//	gate := authgate.New(authgate.WithPublicPaths(nebulo.DefaultPublicPaths()...))
//	client := nebulo.NewClient(cfg.BaseURL, nebulo.WithTransport(gate))
//
//	startups, err := client.Startups.List(ctx)
//
// API failures are returned as *Error. The message prefers the text the
// server sent so front-ends can show it verbatim, falling back to a generic
// one. No call is retried automatically.
package nebulo
