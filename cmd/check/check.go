package check

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"landcheck/internal/gh"
	"landcheck/internal/git"
	"landcheck/internal/land"
	"landcheck/internal/ui"
)

// Command validates that a stacked PR chain is ready to be landed
type Command struct {
	// Flags
	MaxWaitTime  int // seconds to wait for checks before giving up
	PollInterval int // seconds between merge-state polls
	Remote       string
	Trunk        string
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "check <pr-number> <head-ref> <owner/repo>",
		Short: "Wait until a stacked PR chain is ready to be landed",
		Long: `Check that a stacked PR chain is safe to merge.

The stack is resolved from the commit history between the head ref's orig
branch and its merge-base with trunk. Every PR in the stack must have an
approving review; then the head PR's merge state is polled until its
land-blocking checks finish.

Progress and failures are posted as comments on the PR, so anyone watching
the thread sees why a land was delayed or refused.

Example:
  landcheck check 100 gh/alice/7/head octo/widgets
  landcheck check 100 gh/alice/7/head octo/widgets --blocking-status ci/build --max-wait-time 3600`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			prNumber, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid PR number %q", args[0])
			}
			return c.Run(cmd.Context(), prNumber, args[1], args[2])
		},
	}

	cmd.Flags().IntVar(&c.MaxWaitTime, "max-wait-time", 1800, "Maximum seconds to wait for checks to finish")
	cmd.Flags().IntVar(&c.PollInterval, "poll-interval", 15, "Seconds between merge-state polls")
	cmd.Flags().StringSlice("blocking-status", nil, "Land-blocking status context (repeatable)")
	cmd.Flags().StringVar(&c.Remote, "remote", "origin", "Git remote to fetch from")
	cmd.Flags().StringVar(&c.Trunk, "trunk", "main", "Trunk branch the stack lands on")
	viper.BindPFlag("blocking-statuses", cmd.Flags().Lookup("blocking-status"))

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context, prNumber int, headRef, repoPath string) error {
	owner, repoName, ok := strings.Cut(repoPath, "/")
	if !ok || owner == "" || repoName == "" {
		return fmt.Errorf("invalid repository %q (expected owner/repo)", repoPath)
	}

	token := viper.GetString("github-token")
	if token == "" {
		return fmt.Errorf("GitHub token not provided. Use --github-token or set GITHUB_TOKEN")
	}

	gitClient, err := git.NewClient()
	if err != nil {
		return err
	}
	ghClient := gh.NewClient(http.DefaultClient, token)

	blocking := viper.GetStringSlice("blocking-statuses")
	if len(blocking) == 0 {
		ui.Warning("No land-blocking statuses configured - running checks will not delay the land.")
	}

	reporter := land.NewReporter(ghClient, owner, repoName, prNumber)
	client := land.NewClient(gitClient, ghClient, reporter, land.Options{
		Owner:    owner,
		Repo:     repoName,
		Remote:   c.Remote,
		Trunk:    c.Trunk,
		Blocking: land.NewBlockingSet(blocking),
		MaxWait:  time.Duration(c.MaxWaitTime) * time.Second,
		Interval: time.Duration(c.PollInterval) * time.Second,
	})

	if err := client.Run(ctx, prNumber, headRef); err != nil {
		reporter.Fatal(ctx, err.Error())
		return err
	}

	ui.Success("All PRs are ready to be landed")
	return nil
}
