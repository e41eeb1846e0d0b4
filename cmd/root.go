package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"landcheck/cmd/check"
	"landcheck/cmd/status"
	"landcheck/internal/ui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "landcheck",
	Short: "Merge-readiness gate for stacked PRs",
	Long: `Landcheck validates that a stacked pull-request chain is safe to merge.

It resolves the ordered stack of dependent PRs from commit history, verifies
that each one has an approving review, then waits for the head PR's
land-blocking checks to finish before reporting it ready to land. Progress
and failures are posted as comments on the PR thread.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.landcheck/config.yaml)")
	rootCmd.PersistentFlags().String("github-token", "", "GitHub token (defaults to GITHUB_TOKEN env var)")
	viper.BindPFlag("github-token", rootCmd.PersistentFlags().Lookup("github-token"))

	// Register all commands
	commands := []Command{
		&check.Command{},
		&status.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".landcheck"))
			viper.SetConfigType("yaml")
			viper.SetConfigName("config")
		}
	}

	viper.SetEnvPrefix("LANDCHECK")
	viper.AutomaticEnv()

	// The plain GITHUB_TOKEN env var works too, as most CI systems set it.
	viper.BindEnv("github-token", "GITHUB_TOKEN")

	// Config file is optional
	_ = viper.ReadInConfig()
}
