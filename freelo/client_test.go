package freelo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		email   string
		apiKey  string
		wantErr error
	}{
		{
			name:   "valid credentials",
			email:  "user@example.com",
			apiKey: "secret-key",
		},
		{
			name:    "missing email",
			email:   "",
			apiKey:  "secret-key",
			wantErr: ErrMissingEmail,
		},
		{
			name:    "missing API key",
			email:   "user@example.com",
			apiKey:  "",
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "both missing",
			email:   "",
			apiKey:  "",
			wantErr: ErrMissingEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No server is running anywhere; construction must not dial.
			client, err := NewClient(tt.email, tt.apiKey, logger)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, client)
			assert.Equal(t, DefaultBaseURL, client.baseURL)
			assert.Equal(t, tt.email, client.email)
			assert.Equal(t, tt.apiKey, client.apiKey)
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with base URL", func(t *testing.T) {
		client, err := NewClient("user@example.com", "key", logger, WithBaseURL("http://localhost:9999/v1/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9999/v1", client.baseURL)
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("user@example.com", "key", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("user@example.com", "key", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient("user@example.com", "key", logger, WithUserAgent("custom-agent/2.0"))
		require.NoError(t, err)
		assert.Equal(t, "custom-agent/2.0", client.userAgent)
	})

	t.Run("default user agent embeds the email", func(t *testing.T) {
		client, err := NewClient("user@example.com", "key", logger)
		require.NoError(t, err)
		assert.Contains(t, client.userAgent, "user@example.com")
	})
}

func TestRequestHeaders(t *testing.T) {
	logger := zerolog.Nop()
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("user@example.com:secret-key"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantAuth, r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("User-Agent"), "user@example.com")

		switch r.URL.Path {
		case "/task/1":
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			json.NewEncoder(w).Encode(Task{ID: 1, Name: "a"})
		case "/file/6e5b8c2a-0f4d-4c21-9d2e-3fb6a1c0de77":
			// Binary fetches carry no JSON content type.
			assert.Empty(t, r.Header.Get("Content-Type"))
			w.Write([]byte{0x01, 0x02})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, err := NewClient("user@example.com", "secret-key", logger, WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.GetTask(context.Background(), 1)
	require.NoError(t, err)

	_, err = client.DownloadFile(context.Background(), "6e5b8c2a-0f4d-4c21-9d2e-3fb6a1c0de77")
	require.NoError(t, err)
}

func TestHeaderOverridesNeverReplaceAuth(t *testing.T) {
	logger := zerolog.Nop()
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("user@example.com:secret-key"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantAuth, r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("User-Agent"), "user@example.com")
		assert.Equal(t, "yes", r.Header.Get("X-Extra"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := NewClient("user@example.com", "secret-key", logger, WithBaseURL(server.URL))
	require.NoError(t, err)

	// Overrides merge on top of the request but the mandatory auth and
	// identity headers are applied last and win.
	_, err = client.doRequest(context.Background(), http.MethodGet, "/task/1", nil, map[string]string{
		"Authorization": "Bearer stolen",
		"User-Agent":    "impostor",
		"X-Extra":       "yes",
	})
	require.NoError(t, err)
}

func TestErrorClassification(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("remote error with JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{
				"error":   "not_found",
				"message": "Task not found",
			})
		}))
		defer server.Close()

		client, err := NewClient("user@example.com", "key", logger, WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.GetTask(context.Background(), 99999)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Task not found")
		assert.Contains(t, err.Error(), "freelo API error")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsNotFound())
		assert.False(t, apiErr.IsUnauthorized())
	})

	t.Run("remote error with error field only", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid_credentials"})
		}))
		defer server.Close()

		client, err := NewClient("user@example.com", "key", logger, WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.GetTask(context.Background(), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_credentials")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsUnauthorized())
	})

	t.Run("remote error with non-JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("<html>oops</html>"))
		}))
		defer server.Close()

		client, err := NewClient("user@example.com", "key", logger, WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.GetTask(context.Background(), 1)
		require.Error(t, err)
		// The status line carries the numeric code.
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("transport error wraps identically", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client, err := NewClient("user@example.com", "key", logger, WithBaseURL(serverURL))
		require.NoError(t, err)

		_, err = client.GetTask(context.Background(), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "freelo API error")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Zero(t, apiErr.Status)
	})
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name       string
		statusLine string
		body       string
		want       string
	}{
		{
			name:       "message field wins",
			statusLine: "404 Not Found",
			body:       `{"error":"not_found","message":"Task not found"}`,
			want:       "Task not found",
		},
		{
			name:       "error field as fallback",
			statusLine: "400 Bad Request",
			body:       `{"error":"bad_request"}`,
			want:       "bad_request",
		},
		{
			name:       "status line for non-JSON",
			statusLine: "500 Internal Server Error",
			body:       "panic at the disco",
			want:       "500 Internal Server Error",
		},
		{
			name:       "status line for empty JSON",
			statusLine: "502 Bad Gateway",
			body:       `{}`,
			want:       "502 Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.statusLine, []byte(tt.body)))
		})
	}
}

func TestCheckConnection(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"total": 1,
				"data":  map[string]any{"users": []User{{ID: 1, Fullname: "Jan Novák"}}},
			})
		}))
		defer server.Close()

		client, err := NewClient("user@example.com", "key", logger, WithBaseURL(server.URL))
		require.NoError(t, err)
		require.NoError(t, client.CheckConnection(context.Background()))
	})

	t.Run("bad credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid API key"})
		}))
		defer server.Close()

		client, err := NewClient("user@example.com", "wrong", logger, WithBaseURL(server.URL))
		require.NoError(t, err)

		err = client.CheckConnection(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid API key")
	})
}

func TestConcurrentFetchesAreIndependent(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/task/1":
			json.NewEncoder(w).Encode(Task{ID: 1, Name: "first"})
		case "/task/2":
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Task not found"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, err := NewClient("user@example.com", "key", logger, WithBaseURL(server.URL))
	require.NoError(t, err)

	var wg sync.WaitGroup
	var okTask *Task
	var okErr, failErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		okTask, okErr = client.GetTask(context.Background(), 1)
	}()
	go func() {
		defer wg.Done()
		_, failErr = client.GetTask(context.Background(), 2)
	}()
	wg.Wait()

	require.NoError(t, okErr)
	require.NotNil(t, okTask)
	assert.Equal(t, "first", okTask.Name)

	require.Error(t, failErr)
	assert.Contains(t, failErr.Error(), "Task not found")
}
