package main

import (
	"github.com/aretw0/scribe/internal/cli"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo [scenario...]",
	Short: "Print the built-in sample prompts",
	Long:  `Prints the named sample scenarios, or every scenario when none is given. Use --list to see them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := optionsFrom(cmd)
		if list, _ := cmd.Flags().GetBool("list"); list {
			cli.ListDemos(opts)
			return nil
		}
		return cli.RunDemo(opts, args)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolP("list", "l", false, "List available scenarios")
}
