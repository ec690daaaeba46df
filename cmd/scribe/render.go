package main

import (
	"github.com/aretw0/scribe/internal/cli"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <file>...",
	Short: "Render author, content or feed documents",
	Long: `Loads YAML or JSON documents describing an author, a content or a feed and prints
their rendering. The kind is read from the "kind" key or inferred from the fields.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		header, _ := cmd.Flags().GetBool("header")
		return cli.RunRender(optionsFrom(cmd), args, header)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Bool("header", false, "Precede each rendering with a markdown header naming the file")
}
