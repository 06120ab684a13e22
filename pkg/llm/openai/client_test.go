package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskSendsChatCompletionRequest(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"recommendations":["A"]}`}},
			},
		})
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "gpt-3.5-turbo")
	reply, err := c.Ask(context.Background(), "system here", "user here")
	require.NoError(t, err)
	assert.Equal(t, `{"recommendations":["A"]}`, reply)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-3.5-turbo", gotBody["model"])

	rf, ok := gotBody["response_format"].(map[string]any)
	require.True(t, ok, "response_format must be present")
	assert.Equal(t, "json_object", rf["type"])

	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	first := msgs[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "system here", first["content"])
}

func TestAskFailsOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "")
	_, err := c.Ask(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestAskFailsWithoutChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "")
	_, err := c.Ask(context.Background(), "s", "u")
	require.Error(t, err)
}

func TestAskRequiresAPIKey(t *testing.T) {
	c := New("", "", "")
	_, err := c.Ask(context.Background(), "s", "u")
	require.Error(t, err)
}
