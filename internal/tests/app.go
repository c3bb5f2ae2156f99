package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

// StaticDir returns the static directory of the repository.
func StaticDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "static")
}

// NewApp builds an app with in-memory stores. The computer waits aiDelay before moving.
func NewApp(t *testing.T, aiDelay time.Duration) *internal.App {
	t.Helper()

	cfg := &config.ServerConfig{
		ServerHost:  "localhost",
		ServerPort:  "3000",
		StaticDir:   StaticDir(),
		AIDelay:     aiDelay,
		MediumDepth: 1,
		HardDepth:   2,
		SessionTTL:  time.Hour,
	}

	app, err := internal.BuildApp(cfg, &services.Services{}, io.Discard)
	require.NoError(t, err)

	t.Cleanup(app.Games.Close)
	return app
}

// Do sends a request with an optional JSON body to the app.
func Do(t *testing.T, app *internal.App, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Fiber.Test(req)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = resp.Body.Close()
	})

	return resp
}

// Decode reads a JSON response body into out.
func Decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
