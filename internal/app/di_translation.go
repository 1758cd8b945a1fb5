package app

import (
	"fmt"
	"sync"

	translationService "github.com/allisson/notes/internal/translation/service"
	translationUsecase "github.com/allisson/notes/internal/translation/usecase"
)

// translationComponents holds the lazily-initialized translation dependencies.
type translationComponents struct {
	client  translationService.TranslationClient
	useCase translationUsecase.TranslationUseCase

	clientInit  sync.Once
	useCaseInit sync.Once
}

// TranslationClient returns the upstream translation API client.
func (c *Container) TranslationClient() (translationService.TranslationClient, error) {
	var err error
	c.translationComponents.clientInit.Do(func() {
		c.translationComponents.client, err = c.initTranslationClient()
		if err != nil {
			c.initErrors["translationClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["translationClient"]; exists {
		return nil, storedErr
	}
	return c.translationComponents.client, nil
}

// TranslationUseCase returns the translation use case instance.
func (c *Container) TranslationUseCase() (translationUsecase.TranslationUseCase, error) {
	var err error
	c.translationComponents.useCaseInit.Do(func() {
		c.translationComponents.useCase, err = c.initTranslationUseCase()
		if err != nil {
			c.initErrors["translationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["translationUseCase"]; exists {
		return nil, storedErr
	}
	return c.translationComponents.useCase, nil
}

// initTranslationClient creates the upstream translation API client.
func (c *Container) initTranslationClient() (translationService.TranslationClient, error) {
	client, err := translationService.NewTranslationClient(
		c.config.TranslationBaseURL,
		c.config.TranslationAPIKey,
		c.Logger(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation client: %w", err)
	}
	return client, nil
}

// initTranslationUseCase creates the translation use case with all its dependencies.
func (c *Container) initTranslationUseCase() (translationUsecase.TranslationUseCase, error) {
	client, err := c.TranslationClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get translation client for translation use case: %w", err)
	}

	cacheStore, err := c.Cache()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache for translation use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for translation use case: %w", err)
	}

	useCase := translationUsecase.NewTranslationUseCase(
		client,
		cacheStore,
		c.config.TranslationCacheTTL,
		c.Logger(),
	)
	return translationUsecase.NewTranslationUseCaseWithMetrics(useCase, businessMetrics), nil
}
