// Package http provides HTTP handlers for translation endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/notes/internal/httputil"
	"github.com/allisson/notes/internal/translation/domain"
	"github.com/allisson/notes/internal/translation/http/dto"
	translationUseCase "github.com/allisson/notes/internal/translation/usecase"
	customValidation "github.com/allisson/notes/internal/validation"
)

// TranslationHandler handles HTTP requests for the translation proxy. All
// endpoints require an authenticated user.
type TranslationHandler struct {
	translationUseCase translationUseCase.TranslationUseCase
	logger             *slog.Logger
}

// NewTranslationHandler creates a new translation handler with required dependencies.
func NewTranslationHandler(
	translationUseCase translationUseCase.TranslationUseCase,
	logger *slog.Logger,
) *TranslationHandler {
	return &TranslationHandler{
		translationUseCase: translationUseCase,
		logger:             logger,
	}
}

// TranslateHandler translates text between two languages.
// POST /v1/translation/translate - Requires authentication.
// Returns 200 OK with the translated text, or 502 if the upstream API fails.
func (h *TranslationHandler) TranslateHandler(c *gin.Context) {
	var req dto.TranslateRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	translated, err := h.translationUseCase.Translate(c.Request.Context(), &domain.TranslateInput{
		Text:   req.Text,
		Source: req.Source,
		Target: req.Target,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TranslationResponse{TranslatedText: translated})
}

// DetectLanguageHandler detects the language of the given text.
// POST /v1/translation/detect - Requires authentication.
// Returns 200 OK with the detection result, or 502 if the upstream API fails.
func (h *TranslationHandler) DetectLanguageHandler(c *gin.Context) {
	var req dto.DetectLanguageRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	detection, err := h.translationUseCase.DetectLanguage(c.Request.Context(), req.Text)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewDetectionResponse(detection))
}

// ListLanguagesHandler lists the languages supported by the translation API.
// GET /v1/translation/languages - Requires authentication.
// Returns 200 OK with the supported languages, or 502 if the upstream API fails.
func (h *TranslationHandler) ListLanguagesHandler(c *gin.Context) {
	languages, err := h.translationUseCase.ListLanguages(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LanguagesResponse{Languages: languages})
}
