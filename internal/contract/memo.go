package contract

import (
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// ComposeMemoRequest asks the memo service to render a decision memo for
// one user and topic. Decision carries the user's chosen classification;
// when empty the memo falls back to the engine's best-fit suggestion.
type ComposeMemoRequest struct {
	UserID   string
	Topic    string
	Decision string
	Year     int
	Now      *time.Time
}

// ComposeMemoResponse carries the persisted memo and the inputs that went
// into it.
type ComposeMemoResponse struct {
	Memo        *domain.Memo
	BestFit     string
	Decided     bool
	Confidence  int
	GeneratedAt time.Time
}

type MemoErrorCode string

const (
	MemoErrMissingUser   MemoErrorCode = "MISSING_USER"
	MemoErrMissingIntake MemoErrorCode = "MISSING_INTAKE"
	MemoErrEmptyTopic    MemoErrorCode = "EMPTY_TOPIC"
)

type MemoError struct {
	Code    MemoErrorCode
	Message string
}

func (e *MemoError) Error() string {
	return string(e.Code) + ": " + e.Message
}
