package spaces

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/hfspace-cli/api"
)

func TestRunUser_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/spaces", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("author"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[
			{"id": "alice/whisper-demo", "author": "alice", "likes": 3, "sdk": "docker"},
			{"id": "alice/chat-ui", "author": "alice", "likes": 17, "sdk": "gradio"}
		]`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL, "")

	output := captureStdout(t, func() {
		err := runUser("alice", testOptions(), client)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "alice/whisper-demo")
	assert.Contains(t, output, "alice/chat-ui")
}

func TestRunUser_NoSpaces(t *testing.T) {
	stub := &stubService{}

	err := runUser("nobody", testOptions(), stub)
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
}

func TestRunUser_EmptyUsername(t *testing.T) {
	stub := &stubService{}

	err := runUser("", testOptions(), stub)
	require.Error(t, err)
	assert.Zero(t, stub.calls)
}

func TestRunUser_JSONOutput(t *testing.T) {
	stub := &stubService{spaces: []api.Space{{ID: "alice/chat-ui", Author: "alice"}}}
	global := testOptions()
	global.output = "json"

	err := runUser("alice", global, stub)
	require.NoError(t, err)
}
