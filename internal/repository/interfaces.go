package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// ErrNotFound is wrapped by repositories when a requested row does not
// exist. Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")

type IntakeRepo interface {
	Get(ctx context.Context, userID string) (*domain.Intake, error)
	Upsert(ctx context.Context, in *domain.Intake) error
}

// CatalogRepo owns the advisory content rows. Rows are replaced wholesale
// on reload; the engine only ever reads them.
type CatalogRepo interface {
	Load(ctx context.Context) (*domain.Catalog, error)
	ReplaceAll(ctx context.Context, c *domain.Catalog) error
}

type EvidenceRepo interface {
	List(ctx context.Context, userID string) ([]domain.EvidenceItem, error)
	Upsert(ctx context.Context, item *domain.EvidenceItem) error
	SetDone(ctx context.Context, userID, key string, done bool) error
}

type ProfileRepo interface {
	Save(ctx context.Context, p *domain.Profile) error
	GetLatest(ctx context.Context, userID string) (*domain.Profile, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Profile, error)
}

type MemoRepo interface {
	Create(ctx context.Context, m *domain.Memo) error
	GetLatest(ctx context.Context, userID, topic string) (*domain.Memo, error)
	NextVersion(ctx context.Context, userID, topic string) (int, error)
}

type OfferRepo interface {
	Get(ctx context.Context, userID string) (*domain.OfferDraft, error)
	Upsert(ctx context.Context, o *domain.OfferDraft) error
}

type CadenceRepo interface {
	List(ctx context.Context, userID string) ([]domain.CadenceBlock, error)
	Upsert(ctx context.Context, b *domain.CadenceBlock) error
	Delete(ctx context.Context, userID string, day domain.CadenceDay) error
}

type SOPRepo interface {
	Get(ctx context.Context, userID, slug string) (*domain.SOPDoc, error)
	List(ctx context.Context, userID string) ([]*domain.SOPDoc, error)
	Upsert(ctx context.Context, s *domain.SOPDoc) error
	Delete(ctx context.Context, userID, slug string) error
}

type MoneySplitRepo interface {
	Get(ctx context.Context, userID string) (*domain.MoneySplit, error)
	Upsert(ctx context.Context, m *domain.MoneySplit) error
}

type AssessmentRepo interface {
	Get(ctx context.Context, userID string) (*domain.AssessmentResult, error)
	Upsert(ctx context.Context, r *domain.AssessmentResult) error
}
