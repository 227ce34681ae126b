package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sessionRepo implements SessionRepo with the ent SQL builder.
type sessionRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

var answerColumns = []string{
	"sequence", "timestamp", "position", "question_id", "topic", "question",
	"keywords", "explanation", "is_correct", "self_confidence", "total_time",
	"initial_answer_time_ms", "edit_count",
}

func (r *sessionRepo) CreateSession(ctx context.Context, rec SessionRecord, answers []AnswerRecord) (err error) {
	if rec.ID == "" {
		return errors.New("create session: empty id")
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = rec.CreatedAt
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query, args := builder().Insert(SessionsTable.Name).
		Columns("id", "subject", "started_at", "created_at").
		Values(rec.ID, rec.Subject, rec.StartedAt.UTC(), rec.CreatedAt.UTC()).
		Query()
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert session %s: %w", rec.ID, err)
	}

	for i, a := range answers {
		if err = r.insertAnswer(ctx, tx, rec.ID, i, a, now); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit session %s: %w", rec.ID, err)
	}
	return nil
}

func (r *sessionRepo) AppendAnswer(ctx context.Context, sessionID string, a AnswerRecord) (pos int, err error) {
	if _, err := r.GetSession(ctx, sessionID); err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query, args := builder().Select(entsql.Count("*")).
		From(entsql.Table(AnswerEventsTable.Name)).
		Where(entsql.EQ("session_id", sessionID)).
		Query()
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&pos); err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}

	if err = r.insertAnswer(ctx, tx, sessionID, pos, a, time.Now().UTC()); err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit answer: %w", err)
	}
	return pos, nil
}

func (r *sessionRepo) insertAnswer(ctx context.Context, q querier, sessionID string, pos int, a AnswerRecord, now time.Time) error {
	seq, err := r.seq.NextIn(ctx, q)
	if err != nil {
		return err
	}

	var keywords any
	if len(a.Keywords) > 0 {
		b, err := json.Marshal(a.Keywords)
		if err != nil {
			return fmt.Errorf("marshal keywords: %w", err)
		}
		keywords = string(b)
	}

	query, args := builder().Insert(AnswerEventsTable.Name).
		Columns(append([]string{"session_id"}, answerColumns...)...).
		Values(sessionID, seq, now, pos, a.QuestionID, a.Topic, a.Question,
			keywords, a.Explanation, a.IsCorrect, a.SelfConfidence, a.TotalTime,
			a.InitialAnswerTimeMs, a.EditCount).
		Query()
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert answer %s: %w", a.QuestionID, err)
	}
	return nil
}

func (r *sessionRepo) GetSession(ctx context.Context, id string) (*SessionRecord, error) {
	query, args := builder().Select("id", "subject", "started_at", "created_at").
		From(entsql.Table(SessionsTable.Name)).
		Where(entsql.EQ("id", id)).
		Query()

	var rec SessionRecord
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&rec.ID, &rec.Subject, &rec.StartedAt, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query session %s: %w", id, err)
	}
	return &rec, nil
}

func (r *sessionRepo) Answers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	query, args := builder().Select(answerColumns...).
		From(entsql.Table(AnswerEventsTable.Name)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("position").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var (
			a        AnswerRecord
			keywords []byte
		)
		if err := rows.Scan(&a.Sequence, &a.Timestamp, &a.Position, &a.QuestionID,
			&a.Topic, &a.Question, &keywords, &a.Explanation, &a.IsCorrect,
			&a.SelfConfidence, &a.TotalTime, &a.InitialAnswerTimeMs, &a.EditCount); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		if len(keywords) > 0 {
			if err := json.Unmarshal(keywords, &a.Keywords); err != nil {
				return nil, fmt.Errorf("unmarshal keywords of %s: %w", a.QuestionID, err)
			}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *sessionRepo) ListSessions(ctx context.Context, limit int) ([]SessionListing, error) {
	sel := builder().Select("id", "subject", "started_at", "created_at").
		From(entsql.Table(SessionsTable.Name)).
		OrderBy(entsql.Desc("created_at"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	var (
		out []SessionListing
		ids []any
	)
	for rows.Next() {
		var l SessionListing
		if err := rows.Scan(&l.ID, &l.Subject, &l.StartedAt, &l.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, l)
		ids = append(ids, l.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	// The single connection must be free before the second query.
	query, args = builder().Select("session_id", entsql.Count("*")).
		From(entsql.Table(AnswerEventsTable.Name)).
		Where(entsql.In("session_id", ids...)).
		GroupBy("session_id").
		Query()
	crows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count answers: %w", err)
	}
	defer crows.Close()

	counts := make(map[string]int, len(out))
	for crows.Next() {
		var (
			id string
			n  int
		)
		if err := crows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan answer count: %w", err)
		}
		counts[id] = n
	}
	for i := range out {
		out[i].AnswerCount = counts[out[i].ID]
	}
	return out, crows.Err()
}

func (r *sessionRepo) DeleteSession(ctx context.Context, id string) error {
	query, args := builder().Delete(SessionsTable.Name).
		Where(entsql.EQ("id", id)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *sessionRepo) SaveReport(ctx context.Context, snap *ReportSnapshot) error {
	if snap.Sequence == 0 {
		seq, err := r.seq.Next(ctx)
		if err != nil {
			return err
		}
		snap.Sequence = seq
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now().UTC()
	}

	query, args := builder().Insert(ReportSnapshotsTable.Name).
		Columns("sequence", "timestamp", "session_id", "overall_score", "profile_score", "data").
		Values(snap.Sequence, snap.Timestamp, snap.SessionID, snap.OverallScore, snap.ProfileScore, string(snap.Data)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		snap.ID = int(id)
	}
	return nil
}

func (r *sessionRepo) LatestReport(ctx context.Context, sessionID string) (*ReportSnapshot, error) {
	query, args := builder().
		Select("id", "sequence", "timestamp", "session_id", "overall_score", "profile_score", "data").
		From(entsql.Table(ReportSnapshotsTable.Name)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy(entsql.Desc("sequence")).
		Limit(1).
		Query()

	var (
		snap ReportSnapshot
		data []byte
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&snap.ID, &snap.Sequence,
		&snap.Timestamp, &snap.SessionID, &snap.OverallScore, &snap.ProfileScore, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report for session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query latest report: %w", err)
	}
	snap.Data = json.RawMessage(data)
	return &snap, nil
}

func (r *sessionRepo) PruneReports(ctx context.Context, sessionID string, keep int) error {
	// Find the newest snapshot past the keep window.
	query, args := builder().Select("sequence").
		From(entsql.Table(ReportSnapshotsTable.Name)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy(entsql.Desc("sequence")).
		Offset(keep).
		Limit(1).
		Query()

	var threshold int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&threshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep snapshots exist
	}
	if err != nil {
		return fmt.Errorf("query reports for prune: %w", err)
	}

	query, args = builder().Delete(ReportSnapshotsTable.Name).
		Where(entsql.And(
			entsql.EQ("session_id", sessionID),
			entsql.LTE("sequence", threshold),
		)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune reports: %w", err)
	}
	return nil
}
