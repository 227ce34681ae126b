package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/confidex/internal/explain"
	"github.com/abhisek/confidex/internal/llm"
	"github.com/abhisek/confidex/internal/render"
)

func newExplainCmd(e *env) *cobra.Command {
	var (
		title      string
		content    string
		file       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain a concept in simple language with an example",
		Example: `  confidex explain --title "Binary search" --content "Halve the range each step..."
  confidex explain --title "Recursion" --file notes/recursion.txt --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if strings.TrimSpace(title) == "" {
				return errors.New("--title is required")
			}
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read content: %w", err)
				}
				content = string(data)
			}

			// Recording is best effort; a missing database must not block
			// an explanation.
			var rec llm.Recorder
			if st, err := e.openStore(); err != nil {
				e.log.Warn("llm calls will not be recorded", zap.Error(err))
			} else {
				defer st.Close()
				rec = st.EventRepo()
			}

			provider, err := e.newProvider(ctx, rec)
			if err != nil {
				return fmt.Errorf("llm provider: %w", err)
			}

			ex := explain.New(provider, explain.DefaultConfig(), e.log).Explain(ctx, title, content)
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), ex)
			}
			return render.Explanation(cmd.OutOrStdout(), ex)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Concept title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Concept content")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the concept content from a file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the explanation as JSON")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
	return cmd
}
