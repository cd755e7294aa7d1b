package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	logpkg "github.com/ragdex/ragdex/internal/logger"
	ragdex "github.com/ragdex/ragdex/pkg/sdk"
)

var (
	addID    string
	addScope string
	addFile  string
	addMeta  []string
)

var addCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Index a document",
	Long:  "Embeds and indexes a document given inline content or a file.",
	Args:  cobra.MaximumNArgs(1),
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

		var content string
		source := "manual"
		switch {
		case addFile != "":
			data, err := os.ReadFile(addFile)
			if err != nil {
				return fmt.Errorf("read %s: %w", addFile, err)
			}
			content = string(data)
			source = "file"
		case len(args) == 1:
			content = args[0]
		default:
			return fmt.Errorf("content argument or --file is required")
		}

		metadata, err := parseMetadata(addMeta)
		if err != nil {
			return err
		}

		client, err := newLocalClient(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer client.Close()

		doc, err := client.AddDocument(cmd.Context(), ragdex.AddDocumentParams{
			ID:       addID,
			Content:  content,
			Scope:    addScope,
			Source:   source,
			Metadata: metadata,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Indexed document %s (scope %s, %d chars)\n", doc.ID, doc.Scope, len(doc.Content))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "document id (generated when empty)")
	addCmd.Flags().StringVar(&addScope, "scope", "", "document scope (default \"default\")")
	addCmd.Flags().StringVar(&addFile, "file", "", "read content from a file")
	addCmd.Flags().StringSliceVar(&addMeta, "meta", nil, "metadata key=value pairs")
}

func parseMetadata(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid metadata pair %q, want key=value", pair)
		}
		out[key] = value
	}
	return out, nil
}
