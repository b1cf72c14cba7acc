package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// NewClient builds a go-github client with a bounded HTTP timeout. With an
// empty token the client is anonymous, which is enough for public
// repositories.
func NewClient(token string) *gh.Client {
	if token == "" {
		return gh.NewClient(&http.Client{Timeout: 30 * time.Second})
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = 30 * time.Second
	return gh.NewClient(tc)
}

// SplitRepository parses an "owner/name" repository slug as provided by the
// GITHUB_REPOSITORY environment variable.
func SplitRepository(slug string) (owner, repo string, err error) {
	parts := strings.SplitN(strings.TrimSpace(slug), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q, want owner/name", slug)
	}
	return parts[0], parts[1], nil
}
