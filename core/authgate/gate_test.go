package authgate_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebulohub/mobile/core/authgate"
)

// headerRecorder captures the Authorization header of each request.
type headerRecorder struct {
	lastAuth   string
	sawHeader  bool
	lastPath   string
	numServed  int
	headerName string
}

func newRecorderServer(t *testing.T, rec *headerRecorder) *httptest.Server {
	t.Helper()

	if rec.headerName == "" {
		rec.headerName = "Authorization"
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.lastAuth = r.Header.Get(rec.headerName)
		_, rec.sawHeader = r.Header[rec.headerName]
		rec.lastPath = r.URL.Path
		rec.numServed++
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestGate_ProtectedEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("attaches bearer token when set", func(t *testing.T) {
		t.Parallel()

		rec := &headerRecorder{}
		srv := newRecorderServer(t, rec)

		gate := authgate.New(authgate.WithPublicPaths("/Auth/login"))
		gate.SetToken("tok-123")
		client := &http.Client{Transport: gate}

		resp, err := client.Get(srv.URL + "/Startup")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "Bearer tok-123", rec.lastAuth)
	})

	t.Run("sends no header when anonymous", func(t *testing.T) {
		t.Parallel()

		rec := &headerRecorder{}
		srv := newRecorderServer(t, rec)

		gate := authgate.New(authgate.WithPublicPaths("/Auth/login"))
		client := &http.Client{Transport: gate}

		resp, err := client.Get(srv.URL + "/Startup")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.False(t, rec.sawHeader)
	})

	t.Run("token replacement affects subsequent requests", func(t *testing.T) {
		t.Parallel()

		rec := &headerRecorder{}
		srv := newRecorderServer(t, rec)

		gate := authgate.New()
		client := &http.Client{Transport: gate}

		gate.SetToken("first")
		resp, err := client.Get(srv.URL + "/Usuario")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, "Bearer first", rec.lastAuth)

		gate.SetToken("second")
		resp, err = client.Get(srv.URL + "/Usuario")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, "Bearer second", rec.lastAuth)

		gate.SetToken("")
		resp, err = client.Get(srv.URL + "/Usuario")
		require.NoError(t, err)
		resp.Body.Close()
		assert.False(t, rec.sawHeader)
	})

	t.Run("does not mutate the original request", func(t *testing.T) {
		t.Parallel()

		rec := &headerRecorder{}
		srv := newRecorderServer(t, rec)

		gate := authgate.New()
		gate.SetToken("tok")
		client := &http.Client{Transport: gate}

		req, err := http.NewRequest(http.MethodGet, srv.URL+"/Startup", nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Empty(t, req.Header.Get("Authorization"))
		assert.Equal(t, "Bearer tok", rec.lastAuth)
	})
}

func TestGate_PublicEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("never carries a credential regardless of token", func(t *testing.T) {
		t.Parallel()

		rec := &headerRecorder{}
		srv := newRecorderServer(t, rec)

		gate := authgate.New(authgate.WithPublicPaths("/Auth/login", "/register"))
		gate.SetToken("stale-token")
		client := &http.Client{Transport: gate}

		for _, path := range []string{"/Auth/login", "/Usuario/register"} {
			resp, err := client.Post(srv.URL+path, "application/json", nil)
			require.NoError(t, err)
			resp.Body.Close()

			assert.False(t, rec.sawHeader, "public path %s must not carry a credential", path)
		}
	})

	t.Run("substring match covers nested paths", func(t *testing.T) {
		t.Parallel()

		rec := &headerRecorder{}
		srv := newRecorderServer(t, rec)

		gate := authgate.New(authgate.WithPublicPaths("/Auth/login"))
		gate.SetToken("tok")
		client := &http.Client{Transport: gate}

		resp, err := client.Post(srv.URL+"/api/v2/Auth/login", "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()

		assert.False(t, rec.sawHeader)
	})
}

func TestGate_Options(t *testing.T) {
	t.Parallel()

	t.Run("custom header name", func(t *testing.T) {
		t.Parallel()

		rec := &headerRecorder{headerName: "X-Session-Token"}
		srv := newRecorderServer(t, rec)

		gate := authgate.New(authgate.WithHeaderName("X-Session-Token"))
		gate.SetToken("tok")
		client := &http.Client{Transport: gate}

		resp, err := client.Get(srv.URL + "/Startup")
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "Bearer tok", rec.lastAuth)
	})

	t.Run("Token reports the current value", func(t *testing.T) {
		t.Parallel()

		gate := authgate.New()
		assert.Empty(t, gate.Token())

		gate.SetToken("abc")
		assert.Equal(t, "abc", gate.Token())
	})
}
