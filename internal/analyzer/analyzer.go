package analyzer

import (
	"context"
	"fmt"
)

// Analyzer abstracts the external media-analysis capability.
type Analyzer interface {
	// Available reports whether the analyzer is configured and usable.
	Available() bool
	// Analyze returns ski form feedback for the given media bytes.
	Analyze(ctx context.Context, data []byte, mediaType, filename string) (string, error)
}

// Cause classifications for AnalysisError.
const (
	CauseAuth        = "auth"
	CauseQuota       = "quota"
	CauseThrottled   = "throttled"
	CauseUnsupported = "unsupported"
	CauseEmpty       = "empty"
	CauseUnknown     = "unknown"
)

// AnalysisError reports a failed analysis call with a cause classification.
type AnalysisError struct {
	Cause   string
	Message string
}

func (e *AnalysisError) Error() string {
	return e.Message
}

// NewError constructs an AnalysisError.
func NewError(cause, format string, args ...any) *AnalysisError {
	return &AnalysisError{Cause: cause, Message: fmt.Sprintf(format, args...)}
}

// Unavailable is the stand-in analyzer used when no provider is configured.
type Unavailable struct{}

// Available always reports false.
func (Unavailable) Available() bool { return false }

// Analyze always fails; callers should check Available first.
func (Unavailable) Analyze(ctx context.Context, data []byte, mediaType, filename string) (string, error) {
	return "", NewError(CauseUnknown, "analyzer is not configured")
}
