package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/swiftmarket-backend/pkg/config"
)

func TestDisabledWithoutKey(t *testing.T) {
	c := New(config.OpenAIConfig{Model: "gpt-4o-mini"})
	assert.False(t, c.Enabled())

	_, err := c.Complete(context.Background(), Request{Prompt: "hi"})
	assert.True(t, errors.Is(err, ErrDisabled))

	var nilClient *Client
	assert.False(t, nilClient.Enabled())
}

func TestCompleteAgainstCompatibleServer(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop",
				"message": {"role": "assistant", "content": "  Crisp sound, bold style.  "}}]
		}`))
	}))
	defer srv.Close()

	c := New(config.OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "gpt-4o-mini", Timeout: 5 * time.Second})
	require.True(t, c.Enabled())

	text, err := c.Complete(context.Background(), Request{Prompt: "describe", Temperature: 0.7, TopP: 0.9})
	require.NoError(t, err)
	assert.Equal(t, "Crisp sound, bold style.", text)

	assert.Equal(t, "gpt-4o-mini", captured["model"])
	assert.Equal(t, 0.7, captured["temperature"])
	assert.Equal(t, 0.9, captured["top_p"])
	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 1)
}

func TestCompleteSurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "bad request", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	c := New(config.OpenAIConfig{APIKey: "k", BaseURL: srv.URL, Model: "m"})
	_, err := c.Complete(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)
}
