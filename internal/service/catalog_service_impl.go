package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/catalog"
	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
)

type catalogService struct {
	catalogs repository.CatalogRepo
	uow      db.UnitOfWork
	bundle   *catalog.Bundle
	observer UseCaseObserver
}

// NewCatalogService manages the stored advisory catalog. The bundle is
// the session's content source (shipped default or a loaded file); its
// evidence and assessment sections never live in the database.
func NewCatalogService(
	catalogs repository.CatalogRepo,
	uow db.UnitOfWork,
	bundle *catalog.Bundle,
	observers ...UseCaseObserver,
) CatalogService {
	if bundle == nil {
		bundle = catalog.Default()
	}
	return &catalogService{
		catalogs: catalogs,
		uow:      uow,
		bundle:   bundle,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) SeedDefault(ctx context.Context) (*CatalogReport, error) {
	current, err := s.catalogs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stored catalog: %w", err)
	}
	if catalogSize(current) > 0 {
		return reportFor("stored", current, nil), nil
	}
	if err := s.replace(ctx, s.bundle.Catalog); err != nil {
		return nil, err
	}
	return reportFor("default", s.bundle.Catalog, nil), nil
}

func (s *catalogService) ReloadFromFile(ctx context.Context, path string) (rep *CatalogReport, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "reload-catalog",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	bundle, warnings, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	fields["dropped_rows"] = len(warnings)

	if err = s.replace(ctx, bundle.Catalog); err != nil {
		return nil, err
	}
	s.bundle = bundle
	return reportFor(path, bundle.Catalog, warnings), nil
}

func (s *catalogService) Current(ctx context.Context) (*domain.Catalog, error) {
	return s.catalogs.Load(ctx)
}

func (s *catalogService) Assessment() []catalog.AssessmentQuestion {
	return s.bundle.Assessment
}

// replace swaps the stored content atomically so a failed reload can
// never leave a half-replaced catalog behind.
func (s *catalogService) replace(ctx context.Context, c *domain.Catalog) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCatalogRepo(tx).ReplaceAll(ctx, c)
	})
}

func reportFor(source string, c *domain.Catalog, warnings []string) *CatalogReport {
	return &CatalogReport{
		Source:      source,
		Priorities:  len(c.Priorities),
		Watchlist:   len(c.Watchlist),
		Actions:     len(c.Actions),
		Suggestions: len(c.Suggestions),
		Questions:   len(c.Questions),
		Warnings:    warnings,
	}
}
