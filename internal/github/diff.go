package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"

	"github.com/prdigest/prdigest/internal/review"
)

// DiffFetcher is the review.DiffSource backed by the GitHub pulls API.
type DiffFetcher struct {
	client *gh.Client
	owner  string
	repo   string
}

func NewDiffFetcher(client *gh.Client, owner, repo string) *DiffFetcher {
	return &DiffFetcher{client: client, owner: owner, repo: repo}
}

// FetchDiff retrieves the unified diff for a pull request
// (Accept: application/vnd.github.v3.diff).
func (f *DiffFetcher) FetchDiff(ctx context.Context, prNumber int) (string, error) {
	diff, _, err := f.client.PullRequests.GetRaw(ctx, f.owner, f.repo, prNumber, gh.RawOptions{Type: gh.Diff})
	if err != nil {
		return "", classify(fmt.Errorf("get raw diff: %w", err))
	}
	return diff, nil
}

// classify maps go-github failures onto review failure categories so the top
// level can report why a run aborted.
func classify(err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return review.Fail(review.FailureCategoryRateLimit, err)
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return review.Fail(review.FailureCategoryRateLimit, err)
	}
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return review.Fail(review.FailureCategoryAuth, err)
		}
		return review.Fail(review.FailureCategoryError, err)
	}
	return review.Fail(review.FailureCategoryNetwork, err)
}
