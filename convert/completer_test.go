package convert

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatServer streams chunks the way the chat completion API does.
func chatServer(t *testing.T, chunks ...string) (*httptest.Server, *map[string]any) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range chunks {
			data, err := json.Marshal(map[string]any{
				"id":      "chatcmpl-1",
				"object":  "chat.completion.chunk",
				"created": 1,
				"model":   DefaultModel,
				"choices": []any{map[string]any{"index": 0, "delta": map[string]any{"content": chunk}}},
			})
			assert.NoError(t, err)
			_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
			w.(http.Flusher).Flush()
		}
		_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(server.Close)
	return server, &received
}

func TestOpenAI_Session(t *testing.T) {
	server, received := chatServer(t, "<<<SQL>>>\nSELECT ", "TOP 1 * FROM t\n<<<END_SQL>>>", "\n- LIMIT → TOP")
	completer, err := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	s := &Session{Completer: completer}
	result, err := s.Convert(context.Background(), Request{SQL: "SELECT * FROM t LIMIT 1", Source: mysqlToPostgres.Source, Target: mysqlToPostgres.Target}, nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT TOP 1 * FROM t", result.SQL)
	assert.Equal(t, "- LIMIT → TOP", result.Summary)

	assert.Equal(t, DefaultModel, (*received)["model"])
	assert.Equal(t, true, (*received)["stream"])
	assert.EqualValues(t, DefaultMaxTokens, (*received)["max_tokens"])
	messages := (*received)["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestOpenAI_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded","type":"server_error"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	completer, err := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL + "/v1", Model: "other", MaxTokens: 10})
	require.NoError(t, err)
	assert.Equal(t, "other", completer.Model)
	assert.Equal(t, 10, completer.MaxTokens)

	s := &Session{Completer: completer}
	_, err = s.Convert(context.Background(), mysqlToPostgres, nil)
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestNewOpenAI(t *testing.T) {
	_, err := NewOpenAI(OpenAIConfig{})
	assert.Equal(t, ErrNoAPIKey, err)

	completer, err := NewOpenAI(OpenAIConfig{APIKey: "k", SocksProxy: "127.0.0.1:1080"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, completer.Model)
}
