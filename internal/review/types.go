package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// FileChange is the parsed outcome for one path touched by a unified diff.
// Added and Removed count the content lines of the file's hunks beginning
// with '+'/'-', excluding the '+++'/'---' header lines.
type FileChange struct {
	Path    string
	Added   int
	Removed int
	Created bool
	Deleted bool
	Hunks   []string
}

// FailureCategory classifies why a run aborted.
type FailureCategory string

const (
	FailureCategoryNetwork   FailureCategory = "network"
	FailureCategoryAuth      FailureCategory = "auth"
	FailureCategoryRateLimit FailureCategory = "rate_limit"
	FailureCategoryMalformed FailureCategory = "malformed_response"
	FailureCategoryTimeout   FailureCategory = "timeout"
	FailureCategoryError     FailureCategory = "error"
)

// Failure tags a collaborator error with a category so the top level can
// report why the run aborted without matching on message text.
type Failure struct {
	Category FailureCategory
	Err      error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Category)
	}
	return f.Err.Error()
}

func (f *Failure) Unwrap() error { return f.Err }

// Fail wraps err with the given category.
func Fail(category FailureCategory, err error) error {
	return &Failure{Category: category, Err: err}
}

// GetFailureDetails extracts a human-readable reason and a category from any
// error produced by the pipeline.
func GetFailureDetails(err error) (reason string, category FailureCategory) {
	if err == nil {
		return "", ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return strings.TrimSpace(f.Error()), f.Category
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("timeout: %s", strings.TrimSpace(err.Error())), FailureCategoryTimeout
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown failure"
	}
	return msg, FailureCategoryError
}
