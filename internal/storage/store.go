package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jiyul/junior-insight/internal/models"
)

// Store is the row-based backing store for mission entries and progress
// stats: one row per completed mission (unique on user+article) and one
// stats row per user, both written with upsert-on-conflict semantics.
type Store struct {
	db *sql.DB
}

// NewStore opens the database and initializes the schema.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_time_format=sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertEntry writes a mission entry, replacing any previous entry for the
// same user and article.
func (s *Store) UpsertEntry(ctx context.Context, userID string, e models.MissionEntry) error {
	options, err := json.Marshal(e.OpinionOptions)
	if err != nil {
		return fmt.Errorf("failed to marshal opinion options: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (id, user_id, date, news_id, news_title, news_category, summary, choice, reason, word, opinion_options)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, news_id) DO UPDATE SET
			date = excluded.date,
			news_title = excluded.news_title,
			news_category = excluded.news_category,
			summary = excluded.summary,
			choice = excluded.choice,
			reason = excluded.reason,
			word = excluded.word,
			opinion_options = excluded.opinion_options,
			updated_at = CURRENT_TIMESTAMP`,
		e.ID, userID, e.Date, e.NewsID, e.NewsTitle, string(e.NewsCategory),
		e.Summary, choiceValue(e.Choice), e.Reason, e.Word, string(options))
	if err != nil {
		return fmt.Errorf("failed to upsert entry: %w", err)
	}
	return nil
}

// ListEntries returns the user's mission history, newest first.
func (s *Store) ListEntries(ctx context.Context, userID string) ([]models.MissionEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, news_id, news_title, news_category, summary, choice, reason, word, opinion_options
		FROM entries
		WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []models.MissionEntry
	for rows.Next() {
		var (
			e        models.MissionEntry
			category string
			choice   sql.NullInt64
			options  string
		)
		if err := rows.Scan(&e.ID, &e.Date, &e.NewsID, &e.NewsTitle, &category,
			&e.Summary, &choice, &e.Reason, &e.Word, &options); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.NewsCategory = models.Category(category)
		if choice.Valid {
			v := int(choice.Int64)
			e.Choice = &v
		}
		if err := json.Unmarshal([]byte(options), &e.OpinionOptions); err != nil || len(e.OpinionOptions) == 0 {
			e.OpinionOptions = models.DefaultOpinionOptions
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpsertStats writes the user's progress stats row.
func (s *Store) UpsertStats(ctx context.Context, userID string, st models.ProgressStats) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stats (user_id, streak, total, xp, level, last_date)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			streak = excluded.streak,
			total = excluded.total,
			xp = excluded.xp,
			level = excluded.level,
			last_date = excluded.last_date,
			updated_at = CURRENT_TIMESTAMP`,
		userID, st.Streak, st.Total, st.XP, st.Level, st.LastDate)
	if err != nil {
		return fmt.Errorf("failed to upsert stats: %w", err)
	}
	return nil
}

// GetStats loads the user's progress stats. ok=false when no row exists
// yet. The level column is recomputed from xp, never trusted.
func (s *Store) GetStats(ctx context.Context, userID string) (models.ProgressStats, bool, error) {
	var st models.ProgressStats
	err := s.db.QueryRowContext(ctx, `
		SELECT streak, total, xp, level, last_date FROM stats WHERE user_id = ?`, userID).
		Scan(&st.Streak, &st.Total, &st.XP, &st.Level, &st.LastDate)
	if err == sql.ErrNoRows {
		return models.ProgressStats{}, false, nil
	}
	if err != nil {
		return models.ProgressStats{}, false, fmt.Errorf("failed to load stats: %w", err)
	}
	st.Level = models.LevelForXP(st.XP)
	return st, true, nil
}

func choiceValue(choice *int) interface{} {
	if choice == nil {
		return nil
	}
	return *choice
}
