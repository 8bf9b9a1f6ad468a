package spaces

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/hfspace-cli/api"
)

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

func TestRunInfo_RendersAllFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/spaces/stabilityai/stable-diffusion", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "stabilityai/stable-diffusion",
			"author": "stabilityai",
			"private": false,
			"likes": 42,
			"sdk": "gradio",
			"runtime": {"stage": "RUNNING", "hardware": {"current": "a10g-small"}}
		}`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL, "")

	output := captureStdout(t, func() {
		err := runInfo("stabilityai/stable-diffusion", testOptions(), client)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "RUNNING")
	assert.Contains(t, output, "a10g-small")
	assert.Contains(t, output, "gradio")
	assert.Contains(t, output, "public")
	assert.Contains(t, output, "42")
}

func TestRunInfo_JSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id": "a/b", "author": "a"}`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL, "")
	global := testOptions()
	global.output = "json"

	err := runInfo("a/b", global, client)
	require.NoError(t, err)
}

func TestRunInfo_InvalidID(t *testing.T) {
	stub := &stubService{}

	err := runInfo("not-a-space-id", testOptions(), stub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected owner/name")
	assert.Zero(t, stub.calls, "malformed ids must be rejected before any call")
}

func TestRunInfo_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Repository not found"}`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL, "")
	err := runInfo("ghost/space", testOptions(), client)

	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.Contains(t, err.Error(), "not accessible")
}
