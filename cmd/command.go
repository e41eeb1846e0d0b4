package cmd

import "github.com/spf13/cobra"

// Command is implemented by each subcommand package so it can register
// itself with the root command.
type Command interface {
	// Register adds the command to the parent cobra command
	Register(parent *cobra.Command)
}
