package github

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chkwon/redpen-app/internal/config"
)

func writeTestKey(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "app.private-key.pem")
	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	require.NoError(t, os.WriteFile(path, pemBytes, 0600))
	return path
}

func testConfig(keyPath string) *config.Config {
	return &config.Config{
		GitHub: config.GitHubConfig{
			AppID:          12345,
			PrivateKeyPath: keyPath,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestClientForExchangesInstallationToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/app/installations/42/access_tokens", r.URL.Path)
		// The exchange must be authenticated with the app's signed assertion.
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		expires := time.Now().Add(time.Hour).Format(time.RFC3339)
		_, _ = w.Write([]byte(`{"token":"ghs_testtoken","expires_at":"` + expires + `"}`))
	}))
	defer srv.Close()

	factory := NewClientFactoryWithBaseURL(testConfig(writeTestKey(t)), discardLogger(), srv.URL+"/")

	client, token, err := factory.ClientFor(t.Context(), 42)
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, "ghs_testtoken", token.Value)
	assert.True(t, token.ExpiresAt.After(time.Now()))
}

func TestClientForMissingKeyFailsBeforeNetwork(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	cfg := testConfig(filepath.Join(t.TempDir(), "missing.pem"))
	factory := NewClientFactoryWithBaseURL(cfg, discardLogger(), srv.URL+"/")

	_, _, err := factory.ClientFor(t.Context(), 42)
	assert.Error(t, err)
	assert.Equal(t, int64(0), hits.Load(), "a key problem must not reach the network")
}

func TestClientForInvalidKeyFailsBeforeNetwork(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "bad.pem")
	require.NoError(t, os.WriteFile(path, []byte("not a pem"), 0600))
	factory := NewClientFactoryWithBaseURL(testConfig(path), discardLogger(), srv.URL+"/")

	_, _, err := factory.ClientFor(t.Context(), 42)
	assert.Error(t, err)
	assert.Equal(t, int64(0), hits.Load())
}

func TestClientForExchangeFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"no such installation"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	factory := NewClientFactoryWithBaseURL(testConfig(writeTestKey(t)), discardLogger(), srv.URL+"/")

	_, _, err := factory.ClientFor(t.Context(), 42)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "installation token")
}
