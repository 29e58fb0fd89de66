package contract

import (
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// BuildProfileRequest asks the profile service to compose a fresh profile
// for one user. Year defaults to the current year when zero; Now is
// injectable for tests.
type BuildProfileRequest struct {
	UserID  string
	Year    int
	Now     *time.Time
	DryRun  bool
	Persist bool
}

// NewBuildProfileRequest returns a request with persisting defaults.
func NewBuildProfileRequest(userID string) BuildProfileRequest {
	return BuildProfileRequest{
		UserID:  userID,
		Persist: true,
	}
}

// ProfileResponse carries the composed profile plus build telemetry.
type ProfileResponse struct {
	Profile       *domain.Profile
	GeneratedAt   time.Time
	CatalogSize   int
	SkippedRows   int
	EvidenceDone  int
	EvidenceTotal int
	Warnings      []string
}

type ProfileErrorCode string

const (
	ErrMissingUser   ProfileErrorCode = "MISSING_USER"
	ErrMissingIntake ProfileErrorCode = "MISSING_INTAKE"
	ErrEmptyCatalog  ProfileErrorCode = "EMPTY_CATALOG"
	ErrInternal      ProfileErrorCode = "INTERNAL_ERROR"
)

// ProfileError is a typed failure surfaced to callers instead of a bare
// wrapped error, so the CLI can map codes to guidance.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
}

func (e *ProfileError) Error() string {
	return string(e.Code) + ": " + e.Message
}
