package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
)

type offerService struct {
	offers repository.OfferRepo
}

func NewOfferService(offers repository.OfferRepo) OfferService {
	return &offerService{offers: offers}
}

func (s *offerService) Get(ctx context.Context, userID string) (*domain.OfferDraft, error) {
	return s.offers.Get(ctx, userID)
}

func (s *offerService) Save(ctx context.Context, o *domain.OfferDraft) error {
	if o.UserID == "" {
		return fmt.Errorf("offer user id is required")
	}
	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("offer name is required")
	}
	if o.PriceUSD < 0 {
		return fmt.Errorf("offer price must not be negative")
	}
	o.UpdatedAt = time.Now().UTC()
	return s.offers.Upsert(ctx, o)
}

type cadenceService struct {
	blocks repository.CadenceRepo
}

func NewCadenceService(blocks repository.CadenceRepo) CadenceService {
	return &cadenceService{blocks: blocks}
}

func (s *cadenceService) Week(ctx context.Context, userID string) ([]domain.CadenceBlock, error) {
	return s.blocks.List(ctx, userID)
}

func (s *cadenceService) SetBlock(ctx context.Context, b *domain.CadenceBlock) error {
	if b.UserID == "" {
		return fmt.Errorf("cadence user id is required")
	}
	if !domain.ValidCadenceDays[string(b.Day)] {
		return fmt.Errorf("unknown cadence day %q", b.Day)
	}
	if b.Minutes <= 0 {
		return fmt.Errorf("cadence block minutes must be positive")
	}
	b.UpdatedAt = time.Now().UTC()
	return s.blocks.Upsert(ctx, b)
}

func (s *cadenceService) ClearDay(ctx context.Context, userID string, day domain.CadenceDay) error {
	return s.blocks.Delete(ctx, userID, day)
}

type sopService struct {
	sops repository.SOPRepo
}

func NewSOPService(sops repository.SOPRepo) SOPService {
	return &sopService{sops: sops}
}

func (s *sopService) Get(ctx context.Context, userID, slug string) (*domain.SOPDoc, error) {
	return s.sops.Get(ctx, userID, slug)
}

func (s *sopService) List(ctx context.Context, userID string) ([]*domain.SOPDoc, error) {
	return s.sops.List(ctx, userID)
}

func (s *sopService) Save(ctx context.Context, doc *domain.SOPDoc) error {
	if doc.UserID == "" {
		return fmt.Errorf("sop user id is required")
	}
	if strings.TrimSpace(doc.Slug) == "" {
		return fmt.Errorf("sop slug is required")
	}
	if strings.TrimSpace(doc.Title) == "" {
		return fmt.Errorf("sop title is required")
	}
	if len(doc.Steps) == 0 {
		return fmt.Errorf("sop needs at least one step")
	}
	doc.UpdatedAt = time.Now().UTC()
	return s.sops.Upsert(ctx, doc)
}

func (s *sopService) Delete(ctx context.Context, userID, slug string) error {
	return s.sops.Delete(ctx, userID, slug)
}

type moneySplitService struct {
	splits repository.MoneySplitRepo
}

func NewMoneySplitService(splits repository.MoneySplitRepo) MoneySplitService {
	return &moneySplitService{splits: splits}
}

func (s *moneySplitService) Get(ctx context.Context, userID string) (*domain.MoneySplit, error) {
	return s.splits.Get(ctx, userID)
}

func (s *moneySplitService) Save(ctx context.Context, m *domain.MoneySplit) error {
	if m.UserID == "" {
		return fmt.Errorf("split user id is required")
	}
	if err := m.Validate(); err != nil {
		return err
	}
	m.UpdatedAt = time.Now().UTC()
	return s.splits.Upsert(ctx, m)
}

// Preview applies the user's saved split to a revenue figure without
// persisting anything.
func (s *moneySplitService) Preview(ctx context.Context, userID string, revenueCents int64) (*domain.MoneySplit, domain.SplitAmounts, error) {
	if revenueCents < 0 {
		return nil, domain.SplitAmounts{}, fmt.Errorf("revenue must not be negative")
	}
	m, err := s.splits.Get(ctx, userID)
	if err != nil {
		return nil, domain.SplitAmounts{}, err
	}
	return m, m.Allocate(revenueCents), nil
}
