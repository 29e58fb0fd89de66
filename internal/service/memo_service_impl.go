package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/groundwork/internal/contract"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/engine"
	"github.com/alexanderramin/groundwork/internal/export"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/google/uuid"
)

type memoService struct {
	intakes  repository.IntakeRepo
	catalogs repository.CatalogRepo
	evidence repository.EvidenceRepo
	memos    repository.MemoRepo
	observer UseCaseObserver
}

func NewMemoService(
	intakes repository.IntakeRepo,
	catalogs repository.CatalogRepo,
	evidence repository.EvidenceRepo,
	memos repository.MemoRepo,
	observers ...UseCaseObserver,
) MemoService {
	return &memoService{
		intakes:  intakes,
		catalogs: catalogs,
		evidence: evidence,
		memos:    memos,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *memoService) Compose(ctx context.Context, req contract.ComposeMemoRequest) (resp *contract.ComposeMemoResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": req.UserID, "topic": req.Topic}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "compose-memo",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.UserID == "" {
		return nil, &contract.MemoError{Code: contract.MemoErrMissingUser, Message: "user id is required"}
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, &contract.MemoError{Code: contract.MemoErrEmptyTopic, Message: "memo topic is required"}
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}

	intake, err := s.intakes.Get(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.MemoError{
				Code:    contract.MemoErrMissingIntake,
				Message: fmt.Sprintf("no intake on file for user %s; run the intake first", req.UserID),
			}
		}
		return nil, fmt.Errorf("loading intake: %w", err)
	}

	cat, err := s.catalogs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	bestFit := engine.GuessBestFit(intake, cat.Suggestions)
	decision := strings.TrimSpace(req.Decision)
	decided := decision != ""
	if !decided {
		decision = bestFit
	}

	done, total, err := countRequiredEvidence(ctx, s.evidence, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading evidence: %w", err)
	}
	evidenceFrac := 0.0
	if total > 0 {
		evidenceFrac = float64(done) / float64(total)
	}
	confidence := engine.CalcConfidence(intake, decided, evidenceFrac)

	version, err := s.memos.NextVersion(ctx, req.UserID, topic)
	if err != nil {
		return nil, fmt.Errorf("allocating memo version: %w", err)
	}

	body := export.Memo(export.MemoInput{
		Topic:      topic,
		Version:    version,
		Date:       now.Format("2006-01-02"),
		BestFit:    bestFit,
		Decision:   decision,
		Decided:    decided,
		Confidence: confidence,
		Intake:     intake,
		Watchlist:  engine.FilterWatchlist(cat.Watchlist, intake),
	})

	memo := &domain.Memo{
		ID:         uuid.New().String(),
		UserID:     req.UserID,
		Topic:      topic,
		Version:    version,
		Title:      export.MemoTitle(topic),
		Body:       body,
		BestFit:    bestFit,
		Confidence: confidence,
		CreatedAt:  now,
	}
	if err = s.memos.Create(ctx, memo); err != nil {
		return nil, fmt.Errorf("saving memo: %w", err)
	}
	fields["version"] = version
	fields["best_fit"] = bestFit

	return &contract.ComposeMemoResponse{
		Memo:        memo,
		BestFit:     bestFit,
		Decided:     decided,
		Confidence:  confidence,
		GeneratedAt: now,
	}, nil
}

func (s *memoService) GetLatest(ctx context.Context, userID, topic string) (*domain.Memo, error) {
	return s.memos.GetLatest(ctx, userID, topic)
}
