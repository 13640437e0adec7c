package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

// LoaderFactory builds the Loader for one run from its configuration.
type LoaderFactory func(config msgetl.RunConfig) msgetl.Loader

// CleanerFactory builds the Cleaner for one run from its configuration.
type CleanerFactory func(config msgetl.RunConfig, logger msgetl.Logger) msgetl.Cleaner

// PipelineService implements the Pipeline interface.
// Thread-Safety: NOT safe for concurrent Run() calls writing the same table.
type PipelineService struct {
	newLoader  LoaderFactory
	newCleaner CleanerFactory
	openStore  msgetl.StoreOpener
	logger     msgetl.Logger
}

// NewPipelineService creates a new PipelineService with all dependencies injected.
// Panics on nil dependencies.
func NewPipelineService(
	newLoader LoaderFactory,
	newCleaner CleanerFactory,
	openStore msgetl.StoreOpener,
	logger msgetl.Logger,
) *PipelineService {
	if newLoader == nil {
		panic("newLoader cannot be nil")
	}
	if newCleaner == nil {
		panic("newCleaner cannot be nil")
	}
	if openStore == nil {
		panic("openStore cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &PipelineService{
		newLoader:  newLoader,
		newCleaner: newCleaner,
		openStore:  openStore,
		logger:     logger,
	}
}

// Run loads both inputs, cleans the joined table and replaces the
// destination table with the result. Nothing is written unless every
// earlier stage succeeds.
func (s *PipelineService) Run(ctx context.Context, config msgetl.RunConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	s.logger.Info("Loading data...\n    MESSAGES: %s\n    CATEGORIES: %s", config.MessagesPath, config.CategoriesPath)
	joined, err := s.newLoader(config).Load(ctx, config.MessagesPath, config.CategoriesPath)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	s.logger.Verbose("Joined %d rows with %d columns on %q", joined.NumRows(), len(joined.Columns), config.KeyColumn)

	s.logger.Info("Cleaning data...")
	cleaned, err := s.newCleaner(config, s.logger).Clean(joined)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}
	s.logger.Verbose("Cleaned table has %d rows and %d columns", cleaned.NumRows(), len(cleaned.Columns))

	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.Info("Saving data...\n    DATABASE: %s", config.Destination)
	if err := s.save(ctx, config, cleaned); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}

	s.logger.Info("Cleaned data saved to database!")
	return nil
}

func (s *PipelineService) save(ctx context.Context, config msgetl.RunConfig, table *msgetl.Table) (err error) {
	store, err := s.openStore(ctx, config.Destination)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			s.logger.Error("Failed to close %s: %v", config.Destination, closeErr)
			if err == nil {
				err = fmt.Errorf("close %s: %w: %w", config.Destination, msgetl.ErrWriteFailed, closeErr)
			}
		}
	}()

	if err := store.WriteTable(ctx, config.TableName, table); err != nil {
		return err
	}
	s.logger.Verbose("Wrote %d rows to table %q", table.NumRows(), config.TableName)
	return nil
}

// Verify PipelineService implements the msgetl.Pipeline interface at compile time
var _ msgetl.Pipeline = (*PipelineService)(nil)
