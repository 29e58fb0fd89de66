package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/contract"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/engine"
	"github.com/alexanderramin/groundwork/internal/repository"
)

// BuildContext bundles everything a profile composition needs, loaded
// up front so the composition itself runs on plain values.
type BuildContext struct {
	Now           time.Time
	Year          int
	Intake        *domain.Intake
	Catalog       *domain.Catalog
	EvidenceDone  int
	EvidenceTotal int
}

// ContextLoader validates a build request and loads the intake, catalog,
// and evidence state behind it.
type ContextLoader struct {
	intakes  repository.IntakeRepo
	catalogs repository.CatalogRepo
	evidence repository.EvidenceRepo
}

func (cl *ContextLoader) Load(ctx context.Context, req contract.BuildProfileRequest) (*BuildContext, error) {
	if req.UserID == "" {
		return nil, &contract.ProfileError{
			Code:    contract.ErrMissingUser,
			Message: "user id is required",
		}
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}
	year := req.Year
	if year == 0 {
		year = now.Year()
	}

	intake, err := cl.intakes.Get(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.ProfileError{
				Code:    contract.ErrMissingIntake,
				Message: fmt.Sprintf("no intake on file for user %s; run the intake first", req.UserID),
			}
		}
		return nil, fmt.Errorf("loading intake: %w", err)
	}

	cat, err := cl.catalogs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if catalogSize(cat) == 0 {
		return nil, &contract.ProfileError{
			Code:    contract.ErrEmptyCatalog,
			Message: "no advisory catalog is installed",
		}
	}

	done, total, err := countRequiredEvidence(ctx, cl.evidence, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading evidence: %w", err)
	}

	return &BuildContext{
		Now:           now,
		Year:          year,
		Intake:        intake,
		Catalog:       cat,
		EvidenceDone:  done,
		EvidenceTotal: total,
	}, nil
}

// Compose runs the engine stages over a loaded context and assembles the
// profile. Pure given its inputs; persistence is the caller's concern.
func Compose(bctx *BuildContext, id string) *domain.Profile {
	in := bctx.Intake
	tags := engine.DeriveTags(in)

	evidenceFrac := 0.0
	if bctx.EvidenceTotal > 0 {
		evidenceFrac = float64(bctx.EvidenceDone) / float64(bctx.EvidenceTotal)
	}

	return &domain.Profile{
		ID:         id,
		UserID:     in.UserID,
		Version:    domain.ProfileVersion,
		CreatedAt:  bctx.Now,
		Intake:     *in,
		Tags:       tags,
		Modules:    engine.SelectModules(tags),
		Priorities: engine.BuildPriorities(bctx.Catalog.Priorities, tags),
		Questions:  engine.FilterQuestions(bctx.Catalog.Questions, tags),
		Watchlist:  engine.FilterWatchlist(bctx.Catalog.Watchlist, in),
		Calendar:   engine.Synthesize(bctx.Year, bctx.Catalog.Actions),
		Confidence: engine.CalcConfidence(in, false, evidenceFrac),
	}
}

func catalogSize(c *domain.Catalog) int {
	return len(c.Priorities) + len(c.Watchlist) + len(c.Actions) +
		len(c.Suggestions) + len(c.Questions)
}

// countRequiredEvidence tallies required checklist items; optional items
// never move the confidence score.
func countRequiredEvidence(ctx context.Context, repo repository.EvidenceRepo, userID string) (done, total int, err error) {
	items, err := repo.List(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	for _, it := range items {
		if !it.Required {
			continue
		}
		total++
		if it.Done {
			done++
		}
	}
	return done, total, nil
}
