package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "semowl",
		Short: "Parse, store and serve Turtle ontology documents",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a semowl.yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newParseCmd(&configPath))
	rootCmd.AddCommand(newLoadCmd(&configPath))
	rootCmd.AddCommand(newListCmd(&configPath))
	rootCmd.AddCommand(newShowCmd(&configPath))
	rootCmd.AddCommand(newDeleteCmd(&configPath))
	rootCmd.AddCommand(newServeCmd(&configPath))
	rootCmd.AddCommand(newPrefixesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
