package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	logpkg "github.com/ragdex/ragdex/internal/logger"
)

var (
	queryScope   string
	queryStream  bool
	querySources bool
)

var queryCmd = &cobra.Command{
	Use:   "query <question>",
	Short: "Ask a question through the full pipeline",
	Long: "Classifies the question, retrieves context per the routing\n" +
		"strategy, and prints the generated answer.",
	Args: cobra.ExactArgs(1),
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

		if queryStream {
			ans, err := client.AnswerStream(cmd.Context(), args[0], queryScope, func(token string) error {
				fmt.Print(token)
				return nil
			})
			fmt.Println()
			if err != nil {
				return err
			}
			printAnswerMeta(ans.Classification.Category, ans.Strategy, ans.Degraded)
			return nil
		}

		ans, err := client.Answer(cmd.Context(), args[0], queryScope)
		if err != nil {
			return err
		}
		fmt.Println(ans.Text)
		printAnswerMeta(ans.Classification.Category, ans.Strategy, ans.Degraded)

		if querySources && len(ans.Sources) > 0 {
			fmt.Fprintln(os.Stderr, "sources:")
			for _, src := range ans.Sources {
				switch src.Kind {
				case "web":
					fmt.Fprintf(os.Stderr, "  [web] %s %s\n", src.Title, src.URL)
				default:
					fmt.Fprintf(os.Stderr, "  [local] %s (score %.3f)\n", src.ID, src.Score)
				}
			}
		}
		return nil
	},
}

func printAnswerMeta(category, strategy string, degraded bool) {
	suffix := ""
	if degraded {
		suffix = ", retrieval degraded"
	}
	fmt.Fprintf(os.Stderr, "(%s via %s%s)\n", category, strategy, suffix)
}

func init() {
	queryCmd.Flags().StringVar(&queryScope, "scope", "", "retrieval scope (default \"default\")")
	queryCmd.Flags().BoolVar(&queryStream, "stream", false, "stream tokens as they are generated")
	queryCmd.Flags().BoolVar(&querySources, "sources", false, "print retrieval sources")
}
