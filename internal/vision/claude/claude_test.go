package claude

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/liushuangls/go-anthropic/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeAPI(t *testing.T, responseText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("x-api-key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_test",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": ` + jsonEscape(responseText) + `}]
		}`))
	}))
}

func jsonEscape(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}

func TestAnalyze(t *testing.T) {
	srv := newFakeAPI(t, "A crate of mixed produce.\napples | 3\nbread | 1")
	defer srv.Close()

	a := NewClaudeAnalyzer("test-key", "claude-test", anthropic.WithBaseURL(srv.URL))

	result, err := a.Analyze(context.Background(), strings.NewReader("fake-image-bytes"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "A crate of mixed produce.", result.Caption)
	assert.Equal(t, "apples | 3\nbread | 1", result.ItemTable)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "apples", result.Items[0].Name)
	assert.Equal(t, 3, result.Items[0].Quantity)
}

func TestAnalyzeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
	}))
	defer srv.Close()

	a := NewClaudeAnalyzer("test-key", "claude-test", anthropic.WithBaseURL(srv.URL))

	result, err := a.Analyze(context.Background(), strings.NewReader("fake"), "image/jpeg")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestNormaliseMIME(t *testing.T) {
	assert.Equal(t, "image/png", normaliseMIME("image/PNG"))
	assert.Equal(t, "image/webp", normaliseMIME("image/webp"))
	assert.Equal(t, "image/jpeg", normaliseMIME("image/jpg"))
	assert.Equal(t, "image/jpeg", normaliseMIME(""))
	assert.Equal(t, "image/jpeg", normaliseMIME("application/octet-stream"))
}
