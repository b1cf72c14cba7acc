package gitrepo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Repo runs git against a local checkout to produce unified diffs for the
// offline render path.
type Repo struct {
	dir     string
	timeout time.Duration
}

func New(dir string) *Repo {
	return &Repo{dir: dir, timeout: 2 * time.Minute}
}

// Diff returns the unified diff for a revision range such as "main..HEAD".
func (r *Repo) Diff(ctx context.Context, rangeSpec string) (string, error) {
	return r.run(ctx, "diff", "--no-color", "--no-ext-diff", "--find-renames", rangeSpec)
}

func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	c := exec.CommandContext(ctx, "git", args...)
	c.Dir = r.dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		cmd := strings.Join(args, " ")
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("git %s: %w: %s", cmd, err, msg)
		}
		return "", fmt.Errorf("git %s: %w", cmd, err)
	}
	return stdout.String(), nil
}
