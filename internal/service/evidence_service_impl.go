package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/catalog"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
)

type evidenceService struct {
	evidence repository.EvidenceRepo
	specs    []catalog.EvidenceSpec
}

// NewEvidenceService manages the per-user document checklist. specs is
// the catalog's default checklist, copied to a user on first touch.
func NewEvidenceService(evidence repository.EvidenceRepo, specs []catalog.EvidenceSpec) EvidenceService {
	return &evidenceService{evidence: evidence, specs: specs}
}

func (s *evidenceService) Checklist(ctx context.Context, userID string) ([]domain.EvidenceItem, error) {
	items, err := s.evidence.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}

	// First touch: materialize the catalog checklist for this user.
	for _, spec := range s.specs {
		item := &domain.EvidenceItem{
			UserID:   userID,
			Key:      spec.Key,
			Label:    spec.Label,
			Required: spec.Required,
		}
		if err := s.evidence.Upsert(ctx, item); err != nil {
			return nil, fmt.Errorf("seeding checklist item %s: %w", spec.Key, err)
		}
	}
	return s.evidence.List(ctx, userID)
}

func (s *evidenceService) Mark(ctx context.Context, userID, key string, done bool) error {
	return s.evidence.SetDone(ctx, userID, key, done)
}

func (s *evidenceService) Fraction(ctx context.Context, userID string) (done, total int, err error) {
	return countRequiredEvidence(ctx, s.evidence, userID)
}
