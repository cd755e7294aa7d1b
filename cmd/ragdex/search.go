package main

import (
	"fmt"

	"github.com/spf13/cobra"

	logpkg "github.com/ragdex/ragdex/internal/logger"
	ragdex "github.com/ragdex/ragdex/pkg/sdk"
)

var (
	searchScope    string
	searchTopK     int
	searchMinScore float64
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Similarity search over the local index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, err := logpkg.New(resolveEnv(), cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		client, err := newLocalClient(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer client.Close()

		params := ragdex.SearchParams{
			Scope: searchScope,
			TopK:  searchTopK,
		}
		if cmd.Flags().Changed("min-score") {
			params.MinScore = &searchMinScore
		}

		hits, err := client.Search(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}

		if len(hits) == 0 {
			fmt.Println("no results")
			return nil
		}
		for _, hit := range hits {
			content := hit.Document.Content
			if len(content) > 120 {
				content = content[:117] + "..."
			}
			fmt.Printf("%.3f  %s  %s\n", hit.Score, hit.Document.ID, content)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchScope, "scope", "", "search scope (default \"default\")")
	searchCmd.Flags().IntVar(&searchTopK, "top-k", 0, "maximum results (default from config)")
	searchCmd.Flags().Float64Var(&searchMinScore, "min-score", 0, "similarity threshold (default from config)")
}
