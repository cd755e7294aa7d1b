package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ragdex/ragdex/internal/classifier"
	"github.com/ragdex/ragdex/internal/domain"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <query>",
	Short: "Classify a query without answering it",
	Long:  "Prints the category, confidence, and retrieval strategy a query would take.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Classification is pure; no store or provider needed. Config is
		// only consulted for strategy overrides and may be absent.
		var overrides map[domain.Category]domain.Strategy
		if cfg, err := loadConfig(); err == nil {
			overrides = cfg.StrategyOverrides()
		}

		cls := classifier.New().Classify(args[0])
		strategy := domain.StrategyFor(cls.Category, overrides)

		fmt.Printf("category:   %s\n", cls.Category)
		fmt.Printf("confidence: %.2f\n", cls.Confidence)
		fmt.Printf("strategy:   %s\n", strategy)
		if len(cls.MatchedReasons) > 0 {
			fmt.Printf("matched:    %s\n", strings.Join(cls.MatchedReasons, ", "))
		}
		return nil
	},
}
