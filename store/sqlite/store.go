package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ashton-hoops/Defense/clip"
	"github.com/ashton-hoops/Defense/store"
)

const createClips = `
	CREATE TABLE IF NOT EXISTS clips (
		id TEXT PRIMARY KEY,
		filename TEXT,
		path TEXT,
		source_video TEXT,
		game_id INTEGER,
		canonical_game_id TEXT,
		canonical_clip_id TEXT,
		opponent TEXT,
		opponent_slug TEXT,
		location TEXT,
		game_score TEXT,
		quarter INTEGER,
		possession INTEGER,
		situation TEXT,
		formation TEXT,
		play_name TEXT,
		scout_coverage TEXT,
		play_trigger TEXT,
		action_types TEXT,
		action_sequence TEXT,
		coverage TEXT,
		ball_screen TEXT,
		off_ball_screen TEXT,
		help_rotation TEXT,
		disruption TEXT,
		breakdown TEXT,
		result TEXT,
		paint_touch TEXT,
		shooter TEXT,
		shot_location TEXT,
		contest TEXT,
		rebound TEXT,
		points INTEGER,
		has_shot TEXT,
		shot_x TEXT,
		shot_y TEXT,
		shot_result TEXT,
		player_designation TEXT,
		notes TEXT,
		start_time TEXT,
		end_time TEXT,
		actions_json TEXT,
		created_at TEXT,
		updated_at TEXT
	)
`

var createIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_clips_game ON clips (game_id)",
	"CREATE INDEX IF NOT EXISTS idx_clips_canonical_game ON clips (canonical_game_id)",
	"CREATE INDEX IF NOT EXISTS idx_clips_canonical_clip ON clips (canonical_clip_id)",
}

type sqliteStore struct {
	options   store.Options
	conn      *sql.DB
	selectAll string
	selectOne string
	upsert    string
}

func (s *sqliteStore) FetchAll(ctx context.Context) ([]clip.Record, error) {
	rows, err := s.conn.QueryContext(ctx, s.selectAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []clip.Record
	for rows.Next() {
		rec, err := store.ScanClip(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *sqliteStore) Fetch(ctx context.Context, id string) (*clip.Record, error) {
	rec, err := store.ScanClip(s.conn.QueryRowContext(ctx, s.selectOne, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *sqliteStore) Upsert(ctx context.Context, rec clip.Record) error {
	if len(strings.TrimSpace(rec.Id)) == 0 {
		return fmt.Errorf("clip id is required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if rec.CreatedAt == "" {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	if _, err := s.conn.ExecContext(ctx, s.upsert, store.ClipArgs(rec)...); err != nil {
		return err
	}

	return nil
}

func (s *sqliteStore) Remove(ctx context.Context, id string) error {
	if _, err := s.conn.ExecContext(ctx, "DELETE FROM clips WHERE id = ?", id); err != nil {
		return err
	}

	return nil
}

func (s *sqliteStore) Close() error {
	return s.conn.Close()
}

func NewStore(opts ...store.Option) (store.Store, error) {
	options := store.NewOptions(opts...)

	location := options.Location
	if location == "" {
		location = filepath.Join("data", "analytics.sqlite")
	}

	if err := os.MkdirAll(filepath.Dir(location), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	conn, err := sql.Open("sqlite", location+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}

	if _, err := conn.Exec(createClips); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create clips table: %w", err)
	}

	for _, stmt := range createIndexes {
		if _, err := conn.Exec(stmt); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to create index: %w", err)
		}
	}

	cols := store.Columns()
	list := strings.Join(cols, ", ")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")

	sets := make([]string, 0, len(cols))
	for _, col := range cols {
		if col == "id" || col == "created_at" {
			continue
		}
		sets = append(sets, col+" = excluded."+col)
	}

	return &sqliteStore{
		options:   options,
		conn:      conn,
		selectAll: fmt.Sprintf("SELECT %s FROM clips ORDER BY created_at DESC, id", list),
		selectOne: fmt.Sprintf("SELECT %s FROM clips WHERE id = ?", list),
		upsert: fmt.Sprintf(
			"INSERT INTO clips (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
			list, placeholders, strings.Join(sets, ", "),
		),
	}, nil
}
