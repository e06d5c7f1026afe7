//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/polls-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/polls-backend/internal/app"
	"github.com/heartmarshall/polls-backend/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "e2e-secret-that-is-at-least-32-bytes-long",
			JWTIssuer:  "polls-e2e",
			TokenTTL:   time.Hour,
			BcryptCost: 4,
		},
		Polls:     config.PollsConfig{DefaultPageSize: 5, MaxPageSize: 50, MaxOptions: 10},
		Comments:  config.CommentsConfig{PageSize: 2, MaxPageSize: 50, MaxLength: 1000},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 10000, AuthBurst: 1000},
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST", AllowedHeaders: "Authorization"},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper), without Redis.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	handler, cleanup := app.NewHandler(testConfig(), pool, nil, logger)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

// do sends a JSON request and decodes a JSON object response, if any.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(bytes.TrimSpace(raw)) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

// uniqueEmail returns a fresh identity so tests can share the database.
func uniqueEmail(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12] + "@example.com"
}

// uniqueTag returns a fresh category label.
func uniqueTag(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// signup registers a new user and returns its email and session token.
func (ts *testServer) signup(t *testing.T, prefix string) (string, string) {
	t.Helper()

	email := uniqueEmail(prefix)
	status, body := ts.do(t, http.MethodPost, "/auth/signup", "", map[string]any{
		"email":     email,
		"password":  "correct-horse-battery",
		"firstName": strings.ToUpper(prefix[:1]) + prefix[1:],
	})
	require.Equal(t, http.StatusCreated, status, "signup: %v", body)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in signup response")
	return email, token
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %v", body)
	return e["code"].(string)
}

// optionRatios maps option text to its ratio (nil when hidden).
func optionRatios(t *testing.T, poll map[string]any) map[string]any {
	t.Helper()
	out := map[string]any{}
	for _, o := range poll["options"].([]any) {
		opt := o.(map[string]any)
		out[opt["text"].(string)] = opt["ratio"]
	}
	return out
}

func optionID(t *testing.T, poll map[string]any, text string) string {
	t.Helper()
	for _, o := range poll["options"].([]any) {
		opt := o.(map[string]any)
		if opt["text"] == text {
			return opt["id"].(string)
		}
	}
	t.Fatalf("option %q not found", text)
	return ""
}
