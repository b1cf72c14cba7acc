package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v66/github"
)

// commentMarker identifies the bot's own comment so reruns can update it in
// place instead of stacking duplicates.
const commentMarker = "<!-- prdigest -->"

// CommentPoster is the review.CommentSink backed by the GitHub issues API.
type CommentPoster struct {
	client         *gh.Client
	owner          string
	repo           string
	updateExisting bool
}

func NewCommentPoster(client *gh.Client, owner, repo string, updateExisting bool) *CommentPoster {
	return &CommentPoster{client: client, owner: owner, repo: repo, updateExisting: updateExisting}
}

// PostComment publishes the report body on the pull request. When update
// mode is on and a previous marker comment exists, that comment is edited.
func (p *CommentPoster) PostComment(ctx context.Context, prNumber int, body string) error {
	body = commentMarker + "\n" + body

	if p.updateExisting {
		id, found, err := p.findMarkerComment(ctx, prNumber)
		if err != nil {
			return classify(err)
		}
		if found {
			if _, _, err := p.client.Issues.EditComment(ctx, p.owner, p.repo, id, &gh.IssueComment{Body: &body}); err != nil {
				return classify(fmt.Errorf("edit comment %d: %w", id, err))
			}
			return nil
		}
	}

	if _, _, err := p.client.Issues.CreateComment(ctx, p.owner, p.repo, prNumber, &gh.IssueComment{Body: &body}); err != nil {
		return classify(fmt.Errorf("create comment: %w", err))
	}
	return nil
}

func (p *CommentPoster) findMarkerComment(ctx context.Context, prNumber int) (int64, bool, error) {
	opt := &gh.IssueListCommentsOptions{ListOptions: gh.ListOptions{PerPage: 100}}
	for {
		comments, resp, err := p.client.Issues.ListComments(ctx, p.owner, p.repo, prNumber, opt)
		if err != nil {
			return 0, false, fmt.Errorf("list comments: %w", err)
		}
		for _, c := range comments {
			if strings.Contains(c.GetBody(), commentMarker) {
				return c.GetID(), true, nil
			}
		}
		if resp.NextPage == 0 {
			return 0, false, nil
		}
		opt.Page = resp.NextPage
	}
}
