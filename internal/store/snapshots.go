package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Snapshot names. Each is an independent JSON document; the computational
// core treats them as plain values it receives and returns.
const (
	SnapshotTeamConfig    = "team_config"
	SnapshotMatchHistory  = "match_history"
	SnapshotPlayerEdits   = "player_edits"
	SnapshotCustomPlayers = "custom_players"
)

// ErrNoSnapshot is returned when a snapshot has never been saved.
var ErrNoSnapshot = errors.New("snapshot not found")

// LoadSnapshot reads the named snapshot and unmarshals it into v.
func (db *Database) LoadSnapshot(ctx context.Context, name string, v any) error {
	query := `SELECT data FROM snapshots WHERE name = $1`

	var data []byte
	err := db.conn.QueryRowContext(ctx, query, name).Scan(&data)
	if err == sql.ErrNoRows {
		return ErrNoSnapshot
	}
	if err != nil {
		return fmt.Errorf("querying snapshot %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding snapshot %s: %w", name, err)
	}
	return nil
}

// SaveSnapshot marshals v and upserts it as the named snapshot.
func (db *Database) SaveSnapshot(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", name, err)
	}

	query := `
		INSERT INTO snapshots (name, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`
	if _, err := db.conn.ExecContext(ctx, query, name, data); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", name, err)
	}
	return nil
}
