package service

import (
	"context"
	"time"

	"github.com/alexanderramin/groundwork/internal/contract"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/google/uuid"
)

type profileService struct {
	loader   *ContextLoader
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewProfileService(
	intakes repository.IntakeRepo,
	catalogs repository.CatalogRepo,
	evidence repository.EvidenceRepo,
	profiles repository.ProfileRepo,
	observers ...UseCaseObserver,
) ProfileService {
	return &profileService{
		loader:   &ContextLoader{intakes: intakes, catalogs: catalogs, evidence: evidence},
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Build(ctx context.Context, req contract.BuildProfileRequest) (resp *contract.ProfileResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": req.UserID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "build-profile",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	bctx, err := s.loader.Load(ctx, req)
	if err != nil {
		return nil, err
	}

	profile := Compose(bctx, uuid.New().String())
	fields["tags"] = len(profile.Tags)
	fields["priorities"] = len(profile.Priorities)
	fields["confidence"] = profile.Confidence

	if req.Persist && !req.DryRun {
		if err = s.profiles.Save(ctx, profile); err != nil {
			return nil, &contract.ProfileError{
				Code:    contract.ErrInternal,
				Message: "saving profile: " + err.Error(),
			}
		}
	}

	return &contract.ProfileResponse{
		Profile:       profile,
		GeneratedAt:   bctx.Now,
		CatalogSize:   catalogSize(bctx.Catalog),
		EvidenceDone:  bctx.EvidenceDone,
		EvidenceTotal: bctx.EvidenceTotal,
	}, nil
}

func (s *profileService) GetLatest(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.GetLatest(ctx, userID)
}

func (s *profileService) History(ctx context.Context, userID string, limit int) ([]*domain.Profile, error) {
	return s.profiles.ListByUser(ctx, userID, limit)
}
