package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/prdigest/prdigest/internal/config"
	ghx "github.com/prdigest/prdigest/internal/github"
	"github.com/prdigest/prdigest/internal/gitrepo"
	"github.com/prdigest/prdigest/internal/logging"
	"github.com/prdigest/prdigest/internal/review"
)

var rootCmd = &cobra.Command{
	Use:   "prdigest",
	Short: "Automated pull-request review comments",
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the current pull request and post the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.Default(config.LogLevel())

		owner, repo, err := ghx.SplitRepository(config.GitHubRepository())
		if err != nil {
			return err
		}

		prNumber := config.PRNumber()
		if prNumber == 0 {
			prNumber, err = ghx.ResolvePRNumber(config.GitHubEventPath())
			if err != nil {
				return err
			}
		}

		client := ghx.NewClient(config.GitHubToken())
		source := ghx.NewDiffFetcher(client, owner, repo)
		sink := ghx.NewCommentPoster(client, owner, repo, config.UpdateExistingComment())

		narrator, err := review.NewNarrativeClient(review.NarrativeConfig{
			Provider:    config.NarrativeProvider(),
			Model:       config.NarrativeModel(),
			APIKey:      config.OpenAIAPIKey(),
			BaseURL:     config.NarrativeBaseURL(),
			OllamaURL:   config.OllamaURL(),
			CallTimeout: config.LLMCallTimeout(),
		}, logger)
		if err != nil {
			return err
		}

		engine := review.NewEngine(review.Config{
			ExcludePrefixes: config.ExcludePrefixes(),
			MaxPromptTokens: config.MaxPromptTokens(),
			PostEmpty:       config.PostEmptySummary(),
			Logger:          logger,
		}, source, narrator, sink)

		ctx, cancel := signalContext()
		defer cancel()

		if err := engine.Run(ctx, prNumber); err != nil {
			reason, category := review.GetFailureDetails(err)
			logging.New(logger).Error(err, "review run failed", "pr", prNumber, "category", string(category), "reason", reason)
			return err
		}
		return nil
	},
}

var (
	diffFile string
	gitRange string
	repoDir  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the change summary for a local diff (no network)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var diffText string
		switch {
		case diffFile != "":
			data, err := os.ReadFile(diffFile)
			if err != nil {
				return err
			}
			diffText = string(data)
		case gitRange != "":
			out, err := gitrepo.New(repoDir).Diff(cmd.Context(), gitRange)
			if err != nil {
				return err
			}
			diffText = out
		default:
			return fmt.Errorf("one of --diff-file or --git-range is required")
		}

		files := review.ParseDiff(diffText)
		included, _ := review.FilterFiles(files, review.PrefixExcluder(config.ExcludePrefixes()))
		summary := review.BuildSummary(included)
		if summary.Empty() {
			fmt.Println(review.MinimalReport())
			return nil
		}
		fmt.Println(review.AssembleReport(summary, included, "_narrative skipped (offline render)_"))
		return nil
	},
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sigs; cancel() }()
	return ctx, cancel
}

func main() {
	rootCmd.PersistentFlags().Int(config.KeyPRNumber, 0, "pull request number (overrides the event payload)")
	renderCmd.Flags().StringVar(&diffFile, "diff-file", "", "path to a unified diff file")
	renderCmd.Flags().StringVar(&gitRange, "git-range", "", "git revision range, e.g. main..HEAD")
	renderCmd.Flags().StringVar(&repoDir, "repo-dir", ".", "repository checkout for --git-range")

	config.Init(rootCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("prdigest: %v", err)
	}
}
