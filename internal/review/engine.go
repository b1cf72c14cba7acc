package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/prdigest/prdigest/internal/logging"
)

// DiffSource supplies the unified diff for a pull request.
type DiffSource interface {
	FetchDiff(ctx context.Context, prNumber int) (string, error)
}

// NarrativeGenerator returns prose elaborating on a prompt.
type NarrativeGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CommentSink publishes the finished report on the pull request.
type CommentSink interface {
	PostComment(ctx context.Context, prNumber int, body string) error
}

// Config carries the engine policies. All values are explicit; the engine
// performs no environment lookups of its own.
type Config struct {
	ExcludePrefixes []string
	MaxPromptTokens int
	PostEmpty       bool // post a minimal comment when nothing relevant changed
	Sections        []Section
	Logger          logr.Logger
}

// Engine runs the linear review pipeline for one pull-request event:
// fetch diff, parse, summarize, narrate, post. Each invocation is fully
// isolated; the engine holds no cross-run state.
type Engine struct {
	cfg      Config
	log      logging.Logger
	source   DiffSource
	narrator NarrativeGenerator
	sink     CommentSink
	excluded PathExcluder
}

func NewEngine(cfg Config, source DiffSource, narrator NarrativeGenerator, sink CommentSink) *Engine {
	if len(cfg.Sections) == 0 {
		cfg.Sections = DefaultSections
	}
	return &Engine{
		cfg:      cfg,
		log:      logging.New(cfg.Logger),
		source:   source,
		narrator: narrator,
		sink:     sink,
		excluded: PrefixExcluder(cfg.ExcludePrefixes),
	}
}

// Run executes the pipeline for one pull request. Any collaborator failure
// aborts the run before anything is posted; a partial report is never
// published.
func (e *Engine) Run(ctx context.Context, prNumber int) error {
	diffText, err := e.source.FetchDiff(ctx, prNumber)
	if err != nil {
		return fmt.Errorf("fetch diff for PR #%d: %w", prNumber, err)
	}

	files := ParseDiff(diffText)
	included, skipped := FilterFiles(files, e.excluded)
	e.log.Info("parsed diff",
		"pr", prNumber,
		"files_total", len(files),
		"files_included", len(included),
		"files_excluded", len(skipped),
	)

	summary := BuildSummary(included)
	if summary.Empty() {
		if !e.cfg.PostEmpty {
			e.log.Info("no relevant changes, skipping comment", "pr", prNumber)
			return nil
		}
		e.log.Info("no relevant changes, posting minimal report", "pr", prNumber)
		return e.post(ctx, prNumber, MinimalReport())
	}

	promptDiff := TruncateDiff(filteredDiffText(included), e.cfg.MaxPromptTokens)
	prompt := BuildPrompt(e.cfg.Sections, summary.Render(), promptDiff)
	e.log.Debug("built narrative prompt", "pr", prNumber, "prompt_tokens", estimateTokens(prompt))

	narrative, err := e.narrator.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("generate narrative for PR #%d: %w", prNumber, err)
	}

	return e.post(ctx, prNumber, AssembleReport(summary, included, narrative))
}

func (e *Engine) post(ctx context.Context, prNumber int, body string) error {
	if err := e.sink.PostComment(ctx, prNumber, body); err != nil {
		return fmt.Errorf("post comment on PR #%d: %w", prNumber, err)
	}
	e.log.Info("posted review comment", "pr", prNumber, "bytes", len(body))
	return nil
}

// filteredDiffText reassembles the diff restricted to the included files so
// excluded paths never reach the narrative prompt.
func filteredDiffText(files []*FileChange) string {
	var b strings.Builder
	for _, f := range files {
		fmt.Fprintf(&b, "diff --git a/%s b/%s\n", f.Path, f.Path)
		b.WriteString(strings.Join(f.Hunks, "\n"))
		b.WriteByte('\n')
	}
	return b.String()
}
