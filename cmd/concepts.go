package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/confidex/internal/concept"
	"github.com/abhisek/confidex/internal/render"
)

func newConceptsCmd(e *env) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "concepts <notes.txt>",
		Short: "Split study notes into concepts with short summaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read notes: %w", err)
			}

			concepts := concept.Extract(string(data))
			e.log.Debug("concepts extracted", zap.Int("count", len(concepts)))
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), concepts)
			}
			return render.Concepts(cmd.OutOrStdout(), concepts)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output concepts as JSON")
	return cmd
}
