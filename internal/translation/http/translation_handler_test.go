package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/notes/internal/translation/domain"
	"github.com/allisson/notes/internal/translation/http/dto"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockTranslationUseCase is a testify mock for usecase.TranslationUseCase.
type mockTranslationUseCase struct {
	mock.Mock
}

func (m *mockTranslationUseCase) Translate(
	ctx context.Context,
	input *domain.TranslateInput,
) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *mockTranslationUseCase) DetectLanguage(ctx context.Context, text string) (*domain.Detection, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Detection), args.Error(1)
}

func (m *mockTranslationUseCase) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Language), args.Error(1)
}

func newTranslationRouter(useCase *mockTranslationUseCase) *gin.Engine {
	handler := NewTranslationHandler(useCase, testLogger())

	router := gin.New()
	translation := router.Group("/v1/translation")
	translation.POST("/translate", handler.TranslateHandler)
	translation.POST("/detect", handler.DetectLanguageHandler)
	translation.GET("/languages", handler.ListLanguagesHandler)
	return router
}

func performJSONRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestTranslationHandler_Translate(t *testing.T) {
	t.Run("Success_Returns200WithTranslation", func(t *testing.T) {
		useCase := &mockTranslationUseCase{}

		useCase.On("Translate", mock.Anything, &domain.TranslateInput{
			Text:   "hello",
			Source: "en",
			Target: "pt",
		}).Return("olá", nil)

		w := performJSONRequest(
			newTranslationRouter(useCase),
			http.MethodPost,
			"/v1/translation/translate",
			dto.TranslateRequest{Text: "hello", Source: "en", Target: "pt"},
		)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.TranslationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "olá", resp.TranslatedText)
	})

	t.Run("Error_InvalidLanguageCodeReturns422", func(t *testing.T) {
		useCase := &mockTranslationUseCase{}

		w := performJSONRequest(
			newTranslationRouter(useCase),
			http.MethodPost,
			"/v1/translation/translate",
			dto.TranslateRequest{Text: "hello", Source: "english", Target: "pt"},
		)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything)
	})

	t.Run("Error_UpstreamFailureReturns502", func(t *testing.T) {
		useCase := &mockTranslationUseCase{}

		useCase.On("Translate", mock.Anything, mock.Anything).
			Return("", domain.ErrTranslationUpstream)

		w := performJSONRequest(
			newTranslationRouter(useCase),
			http.MethodPost,
			"/v1/translation/translate",
			dto.TranslateRequest{Text: "hello", Source: "en", Target: "pt"},
		)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("Error_MalformedJSONReturns400", func(t *testing.T) {
		useCase := &mockTranslationUseCase{}
		router := newTranslationRouter(useCase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/translation/translate", bytes.NewReader([]byte("{not-json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTranslationHandler_DetectLanguage(t *testing.T) {
	t.Run("Success_Returns200WithDetection", func(t *testing.T) {
		useCase := &mockTranslationUseCase{}

		useCase.On("DetectLanguage", mock.Anything, "hello world").
			Return(&domain.Detection{Language: "en", Confidence: 0.98, IsReliable: true}, nil)

		w := performJSONRequest(
			newTranslationRouter(useCase),
			http.MethodPost,
			"/v1/translation/detect",
			dto.DetectLanguageRequest{Text: "hello world"},
		)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.DetectionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "en", resp.Language)
		assert.True(t, resp.IsReliable)
	})

	t.Run("Error_BlankTextReturns422", func(t *testing.T) {
		useCase := &mockTranslationUseCase{}

		w := performJSONRequest(
			newTranslationRouter(useCase),
			http.MethodPost,
			"/v1/translation/detect",
			dto.DetectLanguageRequest{Text: "   "},
		)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestTranslationHandler_ListLanguages(t *testing.T) {
	t.Run("Success_Returns200WithLanguages", func(t *testing.T) {
		useCase := &mockTranslationUseCase{}

		useCase.On("ListLanguages", mock.Anything).
			Return([]domain.Language{{Language: "en", Name: "English"}}, nil)

		w := performJSONRequest(newTranslationRouter(useCase), http.MethodGet, "/v1/translation/languages", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.LanguagesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Languages, 1)
		assert.Equal(t, "English", resp.Languages[0].Name)
	})

	t.Run("Error_UpstreamFailureReturns502", func(t *testing.T) {
		useCase := &mockTranslationUseCase{}

		useCase.On("ListLanguages", mock.Anything).Return(nil, domain.ErrTranslationUpstream)

		w := performJSONRequest(newTranslationRouter(useCase), http.MethodGet, "/v1/translation/languages", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
