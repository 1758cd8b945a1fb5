// Package service provides the outbound client for the third-party
// translation API (deep-translate via RapidAPI).
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/translation/domain"
)

// TranslationClient defines the outbound operations against the translation API.
type TranslationClient interface {
	// Translate returns the translation of text from source to target language.
	Translate(ctx context.Context, text, source, target string) (string, error)

	// DetectLanguage returns the most likely language of the given text.
	DetectLanguage(ctx context.Context, text string) (*domain.Detection, error)

	// ListLanguages returns the languages supported by the translation API.
	ListLanguages(ctx context.Context) ([]domain.Language, error)
}

// deepTranslateClient implements TranslationClient against the deep-translate
// RapidAPI endpoint.
type deepTranslateClient struct {
	baseURL    string
	apiKey     string
	host       string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewTranslationClient creates a TranslationClient for the given base URL
// (e.g., "https://deep-translate1.p.rapidapi.com/language/translate/v2").
func NewTranslationClient(baseURL, apiKey string, logger *slog.Logger) (TranslationClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid translation base url")
	}

	return &deepTranslateClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		host:    parsed.Host,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

// translateResponse mirrors the upstream translate payload.
type translateResponse struct {
	Data struct {
		Translations struct {
			TranslatedText []string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// detectResponse mirrors the upstream detection payload.
type detectResponse struct {
	Data struct {
		Detections []struct {
			Language   string  `json:"language"`
			Confidence float64 `json:"confidence"`
			IsReliable bool    `json:"isReliable"`
		} `json:"detections"`
	} `json:"data"`
}

// languagesResponse mirrors the upstream languages payload.
type languagesResponse struct {
	Languages []domain.Language `json:"languages"`
}

// Translate returns the translation of text from source to target language.
func (c *deepTranslateClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	payload := map[string]string{"q": text, "source": source, "target": target}

	var response translateResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL, payload, &response); err != nil {
		return "", err
	}

	translations := response.Data.Translations.TranslatedText
	if len(translations) == 0 {
		return "", apperrors.Wrap(domain.ErrTranslationUpstream, "no translation in response")
	}

	return translations[0], nil
}

// DetectLanguage returns the most likely language of the given text.
func (c *deepTranslateClient) DetectLanguage(ctx context.Context, text string) (*domain.Detection, error) {
	payload := map[string]string{"q": text}

	var response detectResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/detect", payload, &response); err != nil {
		return nil, err
	}

	if len(response.Data.Detections) == 0 {
		return nil, apperrors.Wrap(domain.ErrTranslationUpstream, "no detection in response")
	}

	detection := response.Data.Detections[0]
	return &domain.Detection{
		Language:   detection.Language,
		Confidence: detection.Confidence,
		IsReliable: detection.IsReliable,
	}, nil
}

// ListLanguages returns the languages supported by the translation API.
func (c *deepTranslateClient) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	var response languagesResponse
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/languages", nil, &response); err != nil {
		return nil, err
	}

	return response.Languages, nil
}

// do performs a request against the upstream API and decodes the JSON
// response into out. Any transport failure or non-2xx status is reported as
// ErrTranslationUpstream.
func (c *deepTranslateClient) do(ctx context.Context, method, requestURL string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return apperrors.Wrap(err, "failed to encode translation request")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return apperrors.Wrap(err, "failed to build translation request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(domain.ErrTranslationUpstream, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("translation api returned an error status",
			slog.String("url", requestURL),
			slog.Int("status", resp.StatusCode),
		)
		return apperrors.Wrapf(domain.ErrTranslationUpstream, "unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(domain.ErrTranslationUpstream, "failed to decode translation response")
	}

	return nil
}
