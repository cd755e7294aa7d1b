package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ragdex/ragdex/internal/config"
	"github.com/ragdex/ragdex/internal/version"
)

var envFlag string

var rootCmd = &cobra.Command{
	Use:   "ragdex",
	Short: "Local retrieval-augmented answer engine",
	Long: "ragdex classifies queries, retrieves context from a local document\n" +
		"index (and optionally the web), and generates answers through an\n" +
		"OpenAI-compatible inference backend.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "config environment (default from ENV, else local)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
}

func resolveEnv() string {
	if envFlag != "" {
		return envFlag
	}
	return config.GetEnv()
}

func loadConfig() (config.Config, error) {
	return config.Load(resolveEnv())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ragdex %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
	},
}
