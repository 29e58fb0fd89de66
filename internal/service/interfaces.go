package service

import (
	"context"

	"github.com/alexanderramin/groundwork/internal/catalog"
	"github.com/alexanderramin/groundwork/internal/contract"
	"github.com/alexanderramin/groundwork/internal/domain"
)

type IntakeService interface {
	Get(ctx context.Context, userID string) (*domain.Intake, error)
	Save(ctx context.Context, in *domain.Intake) error
}

type ProfileService interface {
	Build(ctx context.Context, req contract.BuildProfileRequest) (*contract.ProfileResponse, error)
	GetLatest(ctx context.Context, userID string) (*domain.Profile, error)
	History(ctx context.Context, userID string, limit int) ([]*domain.Profile, error)
}

type MemoService interface {
	Compose(ctx context.Context, req contract.ComposeMemoRequest) (*contract.ComposeMemoResponse, error)
	GetLatest(ctx context.Context, userID, topic string) (*domain.Memo, error)
}

// CatalogReport summarizes a catalog replace: how much content landed and
// which rows the validator dropped.
type CatalogReport struct {
	Source      string
	Priorities  int
	Watchlist   int
	Actions     int
	Suggestions int
	Questions   int
	Warnings    []string
}

type CatalogService interface {
	// SeedDefault installs the shipped catalog if no content is stored yet.
	SeedDefault(ctx context.Context) (*CatalogReport, error)
	// ReloadFromFile replaces the stored catalog with a validated file.
	ReloadFromFile(ctx context.Context, path string) (*CatalogReport, error)
	Current(ctx context.Context) (*domain.Catalog, error)
	Assessment() []catalog.AssessmentQuestion
}

type EvidenceService interface {
	// Checklist returns the user's evidence rows, seeding the default
	// checklist on first touch.
	Checklist(ctx context.Context, userID string) ([]domain.EvidenceItem, error)
	Mark(ctx context.Context, userID, key string, done bool) error
	// Fraction reports done-over-total across required items only.
	Fraction(ctx context.Context, userID string) (done, total int, err error)
}

type OfferService interface {
	Get(ctx context.Context, userID string) (*domain.OfferDraft, error)
	Save(ctx context.Context, o *domain.OfferDraft) error
}

type CadenceService interface {
	Week(ctx context.Context, userID string) ([]domain.CadenceBlock, error)
	SetBlock(ctx context.Context, b *domain.CadenceBlock) error
	ClearDay(ctx context.Context, userID string, day domain.CadenceDay) error
}

type SOPService interface {
	Get(ctx context.Context, userID, slug string) (*domain.SOPDoc, error)
	List(ctx context.Context, userID string) ([]*domain.SOPDoc, error)
	Save(ctx context.Context, s *domain.SOPDoc) error
	Delete(ctx context.Context, userID, slug string) error
}

type MoneySplitService interface {
	Get(ctx context.Context, userID string) (*domain.MoneySplit, error)
	Save(ctx context.Context, m *domain.MoneySplit) error
	Preview(ctx context.Context, userID string, revenueCents int64) (*domain.MoneySplit, domain.SplitAmounts, error)
}

type AssessmentService interface {
	// Score totals the answers, bands the result, and persists it.
	Score(ctx context.Context, userID string, points []int) (*domain.AssessmentResult, error)
	Latest(ctx context.Context, userID string) (*domain.AssessmentResult, error)
}
