package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "moondream", body["model"])
		assert.NotEmpty(t, body["images"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response": "A shelf of canned goods.\nbeans | 5\nsoup | 2"}`))
	}))
	defer srv.Close()

	a := NewOllamaAnalyzer(srv.URL, "moondream")

	result, err := a.Analyze(context.Background(), strings.NewReader("fake-image"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "A shelf of canned goods.", result.Caption)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "beans", result.Items[0].Name)
	assert.Equal(t, 5, result.Items[0].Quantity)
}

func TestAnalyzeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewOllamaAnalyzer(srv.URL, "moondream")

	result, err := a.Analyze(context.Background(), strings.NewReader("fake-image"), "image/png")
	assert.Error(t, err)
	assert.Nil(t, result)
}
