package status

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"landcheck/internal/gh"
	"landcheck/internal/land"
	"landcheck/internal/ui"
)

// Command shows the current merge readiness of a single PR without waiting
type Command struct{}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "status <pr-number> <owner/repo>",
		Short: "Show the current merge readiness of a PR",
		Long: `Show a one-shot readiness report for a PR: its merge state, approval
summary, and the state of every status check on its head commit.

Read-only - nothing is posted to the PR and nothing waits.

Example:
  landcheck status 100 octo/widgets`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prNumber, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid PR number %q", args[0])
			}
			return c.Run(cmd.Context(), prNumber, args[1])
		},
	}

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context, prNumber int, repoPath string) error {
	owner, repoName, ok := strings.Cut(repoPath, "/")
	if !ok || owner == "" || repoName == "" {
		return fmt.Errorf("invalid repository %q (expected owner/repo)", repoPath)
	}

	token := viper.GetString("github-token")
	if token == "" {
		return fmt.Errorf("GitHub token not provided. Use --github-token or set GITHUB_TOKEN")
	}
	ghClient := gh.NewClient(http.DefaultClient, token)

	pr, err := ghClient.GetPR(ctx, owner, repoName, prNumber)
	if err != nil {
		return err
	}

	reviews, err := ghClient.ListReviews(ctx, owner, repoName, prNumber)
	if err != nil {
		return err
	}

	records, err := ghClient.CombinedStatus(ctx, owner, repoName, pr.HeadSHA)
	if err != nil {
		return err
	}

	ui.Header(fmt.Sprintf("PR #%d: %s", pr.Number, ui.Truncate(pr.Title, 80)))
	ui.Print(ui.Dim(pr.URL))
	ui.Printf("Merge state: %s\n", ui.MergeStateStatus(pr.MergeableState).Render())

	approvals := 0
	for _, review := range reviews {
		if review.Approved() {
			approvals++
		}
	}
	if approvals > 0 {
		ui.Printf("Approvals:   %d\n", approvals)
	} else {
		ui.Printf("Approvals:   %s\n", ui.Bold("none"))
	}

	blocking := land.NewBlockingSet(viper.GetStringSlice("blocking-statuses"))

	if len(records) == 0 {
		ui.Print("No status checks reported for " + pr.HeadSHA)
		return nil
	}

	checks := ui.NewCheckTable().Headers("CHECK", "STATE", "BLOCKING")
	for _, record := range records {
		landBlocking := ""
		if blocking.Contains(record.Context) {
			landBlocking = "yes"
		}
		checks.Row(ui.Truncate(record.Context, 60), ui.CheckStatus(record.State).Render(), landBlocking)
	}
	ui.Print(checks.Render())

	return nil
}
