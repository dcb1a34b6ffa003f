package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

// mockServer creates an httptest.Server standing in for TMDB.
// Paths without a handler get TMDB's 404 body.
type mockServer struct {
	t      *testing.T
	routes map[string]http.HandlerFunc
	query  map[string]string

	mu   sync.Mutex
	hits map[string]int
}

func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	return &mockServer{
		t:      t,
		routes: make(map[string]http.HandlerFunc),
		query:  make(map[string]string),
		hits:   make(map[string]int),
	}
}

// RespondJSON serves body verbatim on path.
func (m *mockServer) RespondJSON(path, body string) *mockServer {
	m.routes[path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
	return m
}

// RespondStatus answers path with code and a TMDB error body.
func (m *mockServer) RespondStatus(path string, code, tmdbCode int, message string) *mockServer {
	m.routes[path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = fmt.Fprintf(w, `{"success": false, "status_code": %d, "status_message": %q}`, tmdbCode, message)
	}
	return m
}

// ExpectQuery asserts a query parameter on every request.
func (m *mockServer) ExpectQuery(key, value string) *mockServer {
	m.query[key] = value
	return m
}

// Build creates and returns the httptest.Server, closed on test cleanup.
func (m *mockServer) Build() *httptest.Server {
	m.t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(m.t, http.MethodGet, r.Method, "unexpected request method")
		assert.Equal(m.t, testAPIKey, r.URL.Query().Get("api_key"), "missing api key")
		for k, v := range m.query {
			assert.Equal(m.t, v, r.URL.Query().Get(k), "query parameter %s", k)
		}
		m.mu.Lock()
		m.hits[r.URL.Path]++
		m.mu.Unlock()

		if h, ok := m.routes[r.URL.Path]; ok {
			h(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success": false, "status_code": 34, "status_message": "The resource you requested could not be found."}`))
	})

	server := httptest.NewServer(handler)
	m.t.Cleanup(server.Close)
	return server
}

// Hits returns how often path was requested.
func (m *mockServer) Hits(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits[path]
}

// writeTestConfig writes a config pointing at baseURL with a catalog in a
// temp dir and returns its path.
func writeTestConfig(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`[tmdb]
api_key = %q
base_url = %q
language = "en-US"
timeout = "5s"

[catalog]
path = %q

[log]
level = "error"
`, testAPIKey, baseURL, filepath.Join(dir, "catalog.db"))

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

// resetFlags restores every flag to its default so runs don't leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// rewriteConfig replaces old with replacement in the config file at path.
func rewriteConfig(t *testing.T, path, old, replacement string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), old)
	require.NoError(t, os.WriteFile(path, bytes.Replace(data, []byte(old), []byte(replacement), 1), 0600))
}
