package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/confidex/internal/llm"
	"github.com/abhisek/confidex/internal/store"
)

func newLLMCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "llm",
		Short: "Inspect recorded LLM requests and usage",
	}
	cmd.AddCommand(newLLMListCmd(e))
	cmd.AddCommand(newLLMViewCmd(e))
	cmd.AddCommand(newLLMStatsCmd(e))
	return cmd
}

func newLLMListCmd(e *env) *cobra.Command {
	var (
		limit   int
		purpose string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent LLM requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := e.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			events, err := st.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{
				Limit:   limit,
				Purpose: purpose,
			})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No LLM events found.")
				return nil
			}

			fmt.Fprintf(out, "%-5s  %-19s  %-20s  %-28s  %-6s  %-6s  %-7s  %s\n",
				"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
			fmt.Fprintln(out, strings.Repeat("─", 106))
			for _, ev := range events {
				ok := "✓"
				if !ev.Success {
					ok = "✗"
				}
				fmt.Fprintf(out, "%-5d  %-19s  %-20s  %-28s  %-6d  %-6d  %-7d  %s\n",
					ev.ID,
					ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
					truncate(ev.Purpose, 20),
					truncate(ev.Model, 28),
					ev.InputTokens,
					ev.OutputTokens,
					ev.LatencyMs,
					ok,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of events to show")
	cmd.Flags().StringVarP(&purpose, "purpose", "p", "",
		fmt.Sprintf("Filter by purpose (%s, %s)", llm.PurposeAnswerAnalysis, llm.PurposeExplanation))
	return cmd
}

func newLLMViewCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show the full request and response of one LLM call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			st, err := e.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ev, err := st.EventRepo().GetLLMEvent(cmd.Context(), id)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("event %d not found", id)
			}
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:        %d\n", ev.ID)
			fmt.Fprintf(out, "Time:      %s\n", ev.Timestamp.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Provider:  %s\n", ev.Provider)
			fmt.Fprintf(out, "Model:     %s\n", ev.Model)
			fmt.Fprintf(out, "Purpose:   %s\n", ev.Purpose)
			fmt.Fprintf(out, "Tokens:    %d in / %d out\n", ev.InputTokens, ev.OutputTokens)
			fmt.Fprintf(out, "Latency:   %dms\n", ev.LatencyMs)
			fmt.Fprintf(out, "Success:   %v\n", ev.Success)
			if ev.ErrorMessage != "" {
				fmt.Fprintf(out, "Error:     %s\n", ev.ErrorMessage)
			}
			fmt.Fprintln(out)
			printBody(out, "REQUEST", ev.RequestBody)
			printBody(out, "RESPONSE", ev.ResponseBody)
			return nil
		},
	}
}

func printBody(w io.Writer, title, body string) {
	sep := strings.Repeat("─", 60)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, sep)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Fprintln(w, body)
}

func newLLMStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show token usage per purpose and estimated cost per model",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := e.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			usage, err := st.EventRepo().LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(usage) == 0 {
				fmt.Fprintln(out, "No LLM usage recorded yet.")
				return nil
			}

			rule := strings.Repeat("─", 76)
			fmt.Fprintln(out, "Usage by Purpose")
			fmt.Fprintln(out, rule)
			fmt.Fprintf(out, "%-20s  %6s  %10s  %10s  %10s  %8s\n",
				"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
			fmt.Fprintln(out, rule)

			var calls, in, outTokens int
			for _, u := range usage {
				fmt.Fprintf(out, "%-20s  %6d  %10d  %10d  %10d  %8d\n",
					truncate(u.Purpose, 20), u.Calls, u.InputTokens, u.OutputTokens,
					u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
				calls += u.Calls
				in += u.InputTokens
				outTokens += u.OutputTokens
			}
			fmt.Fprintln(out, rule)
			fmt.Fprintf(out, "%-20s  %6d  %10d  %10d  %10d\n", "TOTAL", calls, in, outTokens, in+outTokens)

			models, err := st.EventRepo().LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			if len(models) == 0 {
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Estimated Cost (USD)")
			fmt.Fprintln(out, rule)
			fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
			fmt.Fprintln(out, rule)

			var total float64
			var unpriced []string
			for _, m := range models {
				price, ok := llm.LookupCost(m.Model)
				if !ok {
					unpriced = append(unpriced, m.Model)
					fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
						truncate(m.Model, 32), m.Calls, m.InputTokens, m.OutputTokens, "?")
					continue
				}
				c := price.Cost(m.InputTokens, m.OutputTokens)
				total += c
				fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
					truncate(m.Model, 32), m.Calls, m.InputTokens, m.OutputTokens, formatCost(c))
			}

			fmt.Fprintln(out, rule)
			label := "TOTAL"
			if len(unpriced) > 0 {
				label = "TOTAL (partial)"
			}
			fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
			if len(unpriced) > 0 {
				fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
			}
			return nil
		},
	}
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
