package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/catalog"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
)

type assessmentService struct {
	results   repository.AssessmentRepo
	questions []catalog.AssessmentQuestion
	maxScore  int
	observer  UseCaseObserver
}

func NewAssessmentService(
	results repository.AssessmentRepo,
	questions []catalog.AssessmentQuestion,
	observers ...UseCaseObserver,
) AssessmentService {
	b := catalog.Bundle{Assessment: questions}
	return &assessmentService{
		results:   results,
		questions: questions,
		maxScore:  b.MaxScore(),
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *assessmentService) Score(ctx context.Context, userID string, points []int) (res *domain.AssessmentResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": userID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "score-assessment",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if userID == "" {
		return nil, fmt.Errorf("assessment user id is required")
	}
	if len(points) != len(s.questions) {
		return nil, fmt.Errorf("expected %d answers, got %d", len(s.questions), len(points))
	}

	score := 0
	for i, p := range points {
		if p < 0 {
			return nil, fmt.Errorf("answer %d has negative points", i)
		}
		score += p
	}

	res = &domain.AssessmentResult{
		UserID:  userID,
		Score:   score,
		Band:    domain.BandForScore(score, s.maxScore),
		TakenAt: time.Now().UTC(),
	}
	if err = s.results.Upsert(ctx, res); err != nil {
		return nil, fmt.Errorf("saving assessment: %w", err)
	}
	fields["score"] = score
	fields["band"] = string(res.Band)
	return res, nil
}

func (s *assessmentService) Latest(ctx context.Context, userID string) (*domain.AssessmentResult, error) {
	return s.results.Get(ctx, userID)
}
