package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/confidex/internal/render"
	"github.com/abhisek/confidex/internal/session"
	"github.com/abhisek/confidex/internal/store"
)

// keepReports is how many report snapshots are retained per session.
const keepReports = 10

func newSessionCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Store, list and report on assessment sessions",
	}
	cmd.AddCommand(newSessionImportCmd(e))
	cmd.AddCommand(newSessionListCmd(e))
	cmd.AddCommand(newSessionReportCmd(e))
	cmd.AddCommand(newSessionExportCmd(e))
	cmd.AddCommand(newSessionDeleteCmd(e))
	return cmd
}

func newSessionImportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <session.json>",
		Short: "Store a session file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSessionFile(args[0])
			if err != nil {
				return fmt.Errorf("read session: %w", err)
			}

			st, err := e.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			answers := s.Answers()
			records := make([]store.AnswerRecord, len(answers))
			for i, a := range answers {
				records[i] = toRecord(a)
			}
			err = st.SessionRepo().CreateSession(cmd.Context(), store.SessionRecord{
				ID:        s.ID,
				Subject:   s.Subject,
				StartedAt: s.StartedAt,
			}, records)
			if err != nil {
				return fmt.Errorf("store session: %w", err)
			}

			e.log.Info("session imported", zap.String("id", s.ID), zap.Int("answers", len(records)))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported session %s (%d answers)\n", s.ID, len(records))
			return nil
		},
	}
}

func newSessionListCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := e.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			sessions, err := st.SessionRepo().ListSessions(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list sessions: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions found.")
				return nil
			}

			fmt.Fprintf(out, "%-36s  %-19s  %-24s  %s\n", "ID", "Started", "Subject", "Answers")
			fmt.Fprintln(out, strings.Repeat("─", 92))
			for _, s := range sessions {
				fmt.Fprintf(out, "%-36s  %-19s  %-24s  %d\n",
					s.ID,
					s.StartedAt.Local().Format("2006-01-02 15:04:05"),
					truncate(s.Subject, 24),
					s.AnswerCount,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of sessions to show")
	return cmd
}

func newSessionReportCmd(e *env) *cobra.Command {
	var (
		jsonOutput bool
		crossCheck bool
		analyze    bool
		latest     bool
	)

	cmd := &cobra.Command{
		Use:   "report <id>",
		Short: "Evaluate a stored session and save the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := e.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if latest {
				return showLatestReport(cmd, st, args[0], jsonOutput)
			}

			s, err := loadSession(cmd, st, args[0])
			if err != nil {
				return err
			}

			report, err := e.evaluate(ctx, s, session.Options{CrossQuestionConsistency: crossCheck}, analyze, st.EventRepo())
			if err != nil {
				return err
			}

			data, err := json.Marshal(report)
			if err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			repo := st.SessionRepo()
			if err := repo.SaveReport(ctx, &store.ReportSnapshot{
				SessionID:    s.ID,
				OverallScore: report.Summary.OverallScore,
				ProfileScore: report.Profile.OverallScore,
				Data:         data,
			}); err != nil {
				return fmt.Errorf("save report: %w", err)
			}
			if err := repo.PruneReports(ctx, s.ID, keepReports); err != nil {
				e.log.Warn("prune reports failed", zap.String("session", s.ID), zap.Error(err))
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
	cmd.Flags().BoolVar(&latest, "latest", false, "Show the last saved report instead of evaluating again")
	return cmd
}

func showLatestReport(cmd *cobra.Command, st *store.Store, id string, jsonOutput bool) error {
	snap, err := st.SessionRepo().LatestReport(cmd.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no saved report for session %s", id)
	}
	if err != nil {
		return err
	}
	if jsonOutput {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(snap.Data))
		return err
	}
	var report session.Report
	if err := json.Unmarshal(snap.Data, &report); err != nil {
		return fmt.Errorf("decode report %d: %w", snap.ID, err)
	}
	return render.Report(cmd.OutOrStdout(), report)
}

func newSessionExportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "export <id>",
		Short: "Write a stored session as a session file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := e.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			s, err := loadSession(cmd, st, args[0])
			if err != nil {
				return err
			}
			return session.Encode(cmd.OutOrStdout(), s)
		},
	}
}

func newSessionDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a stored session with its answers and reports",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := e.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.SessionRepo().DeleteSession(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
			return nil
		},
	}
}

// loadSession rebuilds a Session from its stored header and answers.
func loadSession(cmd *cobra.Command, st *store.Store, id string) (session.Session, error) {
	ctx := cmd.Context()
	repo := st.SessionRepo()

	rec, err := repo.GetSession(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return session.Session{}, fmt.Errorf("session %s not found", id)
	}
	if err != nil {
		return session.Session{}, err
	}

	records, err := repo.Answers(ctx, id)
	if err != nil {
		return session.Session{}, err
	}
	answers := make([]session.AnswerInput, len(records))
	for i, r := range records {
		answers[i] = fromRecord(r)
	}
	return session.Restore(rec.ID, rec.Subject, rec.StartedAt, answers)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: %w", arg, err)
	}
	return id, nil
}
