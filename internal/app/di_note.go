package app

import (
	"fmt"
	"sync"

	noteRepository "github.com/allisson/notes/internal/note/repository"
	noteUsecase "github.com/allisson/notes/internal/note/usecase"
)

// noteComponents holds the lazily-initialized note dependencies.
type noteComponents struct {
	repo    noteUsecase.NoteRepository
	useCase noteUsecase.NoteUseCase

	repoInit    sync.Once
	useCaseInit sync.Once
}

// NoteRepository returns the note repository instance.
func (c *Container) NoteRepository() (noteUsecase.NoteRepository, error) {
	var err error
	c.noteComponents.repoInit.Do(func() {
		c.noteComponents.repo, err = c.initNoteRepository()
		if err != nil {
			c.initErrors["noteRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["noteRepo"]; exists {
		return nil, storedErr
	}
	return c.noteComponents.repo, nil
}

// NoteUseCase returns the note use case instance.
func (c *Container) NoteUseCase() (noteUsecase.NoteUseCase, error) {
	var err error
	c.noteComponents.useCaseInit.Do(func() {
		c.noteComponents.useCase, err = c.initNoteUseCase()
		if err != nil {
			c.initErrors["noteUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["noteUseCase"]; exists {
		return nil, storedErr
	}
	return c.noteComponents.useCase, nil
}

// initNoteRepository creates the note repository instance.
func (c *Container) initNoteRepository() (noteUsecase.NoteRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for note repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return noteRepository.NewMySQLNoteRepository(db), nil
	case "postgres":
		return noteRepository.NewPostgreSQLNoteRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initNoteUseCase creates the note use case with all its dependencies.
func (c *Container) initNoteUseCase() (noteUsecase.NoteUseCase, error) {
	noteRepo, err := c.NoteRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get note repository for note use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for note use case: %w", err)
	}

	useCase := noteUsecase.NewNoteUseCase(noteRepo)
	return noteUsecase.NewNoteUseCaseWithMetrics(useCase, businessMetrics), nil
}
