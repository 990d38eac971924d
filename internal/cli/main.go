package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "reelcut <input>",
		Short:        "Cut highlight reels from a local video",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("config", "", "Path to YAML config file")
	root.Flags().String("out", "", "Output directory")
	root.Flags().Int("reels", 0, "Number of highlight reels")
	root.Flags().Float64("budget", 0, "Total highlight duration budget in seconds")
	root.Flags().Bool("keep", false, "Keep the invocation workspace for debugging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
