package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
)

type intakeService struct {
	intakes  repository.IntakeRepo
	observer UseCaseObserver
}

func NewIntakeService(intakes repository.IntakeRepo, observers ...UseCaseObserver) IntakeService {
	return &intakeService{
		intakes:  intakes,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *intakeService) Get(ctx context.Context, userID string) (*domain.Intake, error) {
	return s.intakes.Get(ctx, userID)
}

func (s *intakeService) Save(ctx context.Context, in *domain.Intake) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-intake",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user": in.UserID},
		})
	}()

	if in.UserID == "" {
		return fmt.Errorf("intake user id is required")
	}
	normalizeIntake(in)
	return s.intakes.Upsert(ctx, in)
}

// normalizeIntake trims free-text fields and uppercases state codes so
// rule matching sees consistent input.
func normalizeIntake(in *domain.Intake) {
	in.EntityLegalForm = strings.TrimSpace(in.EntityLegalForm)
	in.TaxClassification = strings.TrimSpace(in.TaxClassification)
	in.Industry = strings.TrimSpace(in.Industry)
	in.RevenueBracket = strings.TrimSpace(in.RevenueBracket)
	in.PayrollW2Bracket = strings.TrimSpace(in.PayrollW2Bracket)

	codes := make([]string, 0, len(in.StateCodes))
	for _, c := range in.StateCodes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			codes = append(codes, c)
		}
	}
	in.StateCodes = codes
}
