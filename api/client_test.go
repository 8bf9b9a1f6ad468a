package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://hub.example.com", "hf_token123")

	assert.NotNil(t, client)
	assert.Equal(t, "https://hub.example.com", client.endpoint)
	assert.Equal(t, "hf_token123", client.token)
	assert.True(t, client.HasToken())
}

func TestNewClient_DefaultEndpoint(t *testing.T) {
	client := NewClient("", "")

	assert.Equal(t, DefaultEndpoint, client.endpoint)
	assert.False(t, client.HasToken())
}

func TestClient_AuthHeader(t *testing.T) {
	var capturedAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "hf_mytoken")
	_, err := client.do(context.Background(), "GET", "/test", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer hf_mytoken", capturedAuth)
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var capturedAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.do(context.Background(), "GET", "/test", nil)
	require.NoError(t, err)

	assert.Empty(t, capturedAuth)
}

func TestClient_ErrorResponse(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		responseBody   string
		expectedErrMsg string
		classify       func(error) bool
	}{
		{
			name:           "401 unauthorized",
			statusCode:     401,
			responseBody:   `{"error": "Invalid credentials"}`,
			expectedErrMsg: "unauthorized",
			classify:       IsUnauthorized,
		},
		{
			name:           "403 forbidden",
			statusCode:     403,
			responseBody:   `{"error": "You don't have the rights to restart this space"}`,
			expectedErrMsg: "forbidden",
			classify:       IsForbidden,
		},
		{
			name:           "404 not found",
			statusCode:     404,
			responseBody:   `{"error": "Repository not found"}`,
			expectedErrMsg: "not found",
			classify:       IsNotFound,
		},
		{
			name:           "429 rate limited",
			statusCode:     429,
			responseBody:   `{"error": "Too many requests"}`,
			expectedErrMsg: "retry later",
			classify:       IsRateLimited,
		},
		{
			name:           "503 unavailable",
			statusCode:     503,
			responseBody:   `{"error": "Service temporarily unavailable"}`,
			expectedErrMsg: "service unavailable",
			classify:       IsUnavailable,
		},
		{
			name:           "non-JSON error body",
			statusCode:     500,
			responseBody:   `upstream timeout`,
			expectedErrMsg: "upstream timeout",
			classify:       IsUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := NewClient(server.URL, "token")
			_, err := client.do(context.Background(), "GET", "/test", nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
			assert.True(t, tt.classify(err))
		})
	}
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	// Point at a closed server to force a connection error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "token")
	_, err := client.do(context.Background(), "GET", "/test", nil)

	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.False(t, IsNotFound(err))
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := client.do(ctx, "GET", "/test", nil)
	require.Error(t, err)
}

func TestValidateSpaceID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"stabilityai/stable-diffusion", false},
		{"alice/my-space", false},
		{"no-slash", true},
		{"too/many/segments", true},
		{"/name", true},
		{"owner/", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateSpaceID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
