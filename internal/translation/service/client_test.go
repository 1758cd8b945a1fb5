package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/notes/internal/translation/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) TranslationClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewTranslationClient(server.URL, "test-api-key", testLogger())
	require.NoError(t, err)

	return client
}

func TestNewTranslationClient(t *testing.T) {
	t.Run("Success_ValidBaseURL", func(t *testing.T) {
		client, err := NewTranslationClient("https://deep-translate1.p.rapidapi.com/language/translate/v2", "key", testLogger())
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Error_InvalidBaseURL", func(t *testing.T) {
		_, err := NewTranslationClient("not-a-url", "key", testLogger())
		assert.Error(t, err)
	})
}

func TestTranslationClient_Translate(t *testing.T) {
	t.Run("Success_TranslateText", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "test-api-key", r.Header.Get("x-rapidapi-key"))
			assert.NotEmpty(t, r.Header.Get("x-rapidapi-host"))

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "hello", payload["q"])
			assert.Equal(t, "en", payload["source"])
			assert.Equal(t, "pt", payload["target"])

			_, _ = w.Write([]byte(`{"data":{"translations":{"translatedText":["olá"]}}}`))
		})

		translated, err := client.Translate(context.Background(), "hello", "en", "pt")
		require.NoError(t, err)
		assert.Equal(t, "olá", translated)
	})

	t.Run("Error_EmptyTranslationList", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{"translations":{"translatedText":[]}}}`))
		})

		_, err := client.Translate(context.Background(), "hello", "en", "pt")
		assert.ErrorIs(t, err, domain.ErrTranslationUpstream)
	})

	t.Run("Error_UpstreamStatusError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := client.Translate(context.Background(), "hello", "en", "pt")
		assert.ErrorIs(t, err, domain.ErrTranslationUpstream)
	})

	t.Run("Error_MalformedResponseBody", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not-json`))
		})

		_, err := client.Translate(context.Background(), "hello", "en", "pt")
		assert.ErrorIs(t, err, domain.ErrTranslationUpstream)
	})
}

func TestTranslationClient_DetectLanguage(t *testing.T) {
	t.Run("Success_DetectLanguage", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/detect", r.URL.Path)
			_, _ = w.Write([]byte(`{"data":{"detections":[{"language":"en","confidence":0.98,"isReliable":true}]}}`))
		})

		detection, err := client.DetectLanguage(context.Background(), "hello world")
		require.NoError(t, err)
		assert.Equal(t, "en", detection.Language)
		assert.InDelta(t, 0.98, detection.Confidence, 0.0001)
		assert.True(t, detection.IsReliable)
	})

	t.Run("Error_NoDetections", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{"detections":[]}}`))
		})

		_, err := client.DetectLanguage(context.Background(), "hello world")
		assert.ErrorIs(t, err, domain.ErrTranslationUpstream)
	})
}

func TestTranslationClient_ListLanguages(t *testing.T) {
	t.Run("Success_ListLanguages", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/languages", r.URL.Path)
			_, _ = w.Write([]byte(`{"languages":[{"language":"en","name":"English"},{"language":"pt","name":"Portuguese"}]}`))
		})

		languages, err := client.ListLanguages(context.Background())
		require.NoError(t, err)
		require.Len(t, languages, 2)
		assert.Equal(t, "en", languages[0].Language)
		assert.Equal(t, "Portuguese", languages[1].Name)
	})

	t.Run("Error_UpstreamStatusError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.ListLanguages(context.Background())
		assert.ErrorIs(t, err, domain.ErrTranslationUpstream)
	})
}
