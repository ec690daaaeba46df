package main

import (
	"fmt"
	"os"

	"github.com/aretw0/scribe/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Scribe composes structured prompts from nested builders",
	Long: `Scribe assembles prompt documents out of lines, markdown headers, item lists
and rendered domain values (authors, contents and feeds).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Bool("pretty", false, "Render output as markdown for the terminal")
	rootCmd.PersistentFlags().Int("width", 0, "Word wrap width for --pretty (0 = default)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Do not print the banner")
}

func optionsFrom(cmd *cobra.Command) cli.Options {
	debug, _ := cmd.Flags().GetBool("debug")
	pretty, _ := cmd.Flags().GetBool("pretty")
	width, _ := cmd.Flags().GetInt("width")
	quiet, _ := cmd.Flags().GetBool("quiet")
	return cli.Options{
		Debug:  debug,
		Pretty: pretty,
		Width:  width,
		Quiet:  quiet,
		Out:    cmd.OutOrStdout(),
	}
}
