package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/confidex/internal/render"
	"github.com/abhisek/confidex/internal/session"
)

func newScoreCmd(e *env) *cobra.Command {
	var (
		jsonOutput bool
		crossCheck bool
		analyze    bool
	)

	cmd := &cobra.Command{
		Use:   "score <session.json>",
		Short: "Score a session file without storing it",
		Example: `  confidex score session.json
  confidex score session.json --json --cross-consistency`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSessionFile(args[0])
			if err != nil {
				return fmt.Errorf("read session: %w", err)
			}

			report, err := e.evaluate(cmd.Context(), s, session.Options{CrossQuestionConsistency: crossCheck}, analyze, nil)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return render.Report(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&crossCheck, "cross-consistency", false, "Score consistency against earlier answers")
	cmd.Flags().BoolVar(&analyze, "analyze", false, "Run LLM rubric analysis on every answer")
	return cmd
}
