// Package store persists parsed event histories and game state snapshots
// to Postgres via pgx, grounded in the teacher's simulation/database.go
// (context-scoped Exec calls, %w-wrapped errors returned to the caller) and
// main.go's pgxpool configuration.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baseball-sim/feedcore/domain"
)

const opTimeout = 5 * time.Second

// Store wraps a pgx connection pool scoped to this service's tables.
type Store struct {
	pool *pgxpool.Pool
}

// Config mirrors the pool tuning the teacher derives from worker count in
// main.go's NewServer (MaxConns/MinConns/MaxConnLifetime/MaxConnIdleTime).
type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Open establishes the pool and verifies connectivity with Ping.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("store: parsing dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("store: creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: pinging database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() { s.pool.Close() }

// eventEnvelope is the persisted JSON shape of a domain.Event: the Go type
// name plus its fields, since domain.Event has no exported discriminant of
// its own (it's a sum expressed via interface + marker method).
type eventEnvelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// SaveEvent stores one parsed event for gameID at sequence seq. Implements
// feed.EventSink.
func (s *Store) SaveEvent(ctx context.Context, gameID string, seq int, event domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("store: marshaling event: %w", err)
	}
	env := eventEnvelope{Kind: fmt.Sprintf("%T", event), Payload: payload}
	envJSON, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("store: marshaling envelope: %w", err)
	}

	query := `
		INSERT INTO game_events (game_id, seq, kind, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (game_id, seq) DO UPDATE SET kind = $3, payload = $4
	`
	if _, err := s.pool.Exec(ctx, query, gameID, seq, env.Kind, envJSON); err != nil {
		return fmt.Errorf("store: inserting event for game %s seq %d: %w", gameID, seq, err)
	}
	return nil
}

// SaveState upserts the latest State snapshot for gameID.
func (s *Store) SaveState(ctx context.Context, gameID string, state domain.State) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("store: marshaling state: %w", err)
	}

	query := `
		INSERT INTO games (id, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET state = $2, updated_at = NOW()
	`
	if _, err := s.pool.Exec(ctx, query, gameID, stateJSON); err != nil {
		return fmt.Errorf("store: saving state for game %s: %w", gameID, err)
	}
	return nil
}

// LoadState fetches the latest State snapshot for gameID.
func (s *Store) LoadState(ctx context.Context, gameID string) (domain.State, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var stateJSON []byte
	query := `SELECT state FROM games WHERE id = $1`
	if err := s.pool.QueryRow(ctx, query, gameID).Scan(&stateJSON); err != nil {
		return domain.State{}, fmt.Errorf("store: loading state for game %s: %w", gameID, err)
	}
	var state domain.State
	if err := json.Unmarshal(stateJSON, &state); err != nil {
		return domain.State{}, fmt.Errorf("store: unmarshaling state: %w", err)
	}
	return state, nil
}

// StoredEvent is one row from game_events, as returned by ListEvents.
type StoredEvent struct {
	Seq     int             `json:"seq"`
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// ListEvents returns every event stored for gameID, ordered by sequence.
func (s *Store) ListEvents(ctx context.Context, gameID string) ([]StoredEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `SELECT seq, kind, payload FROM game_events WHERE game_id = $1 ORDER BY seq ASC`
	rows, err := s.pool.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("store: listing events for game %s: %w", gameID, err)
	}
	defer rows.Close()

	var events []StoredEvent
	for rows.Next() {
		var e StoredEvent
		if err := rows.Scan(&e.Seq, &e.Kind, &e.Payload); err != nil {
			return nil, fmt.Errorf("store: scanning event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterating event rows: %w", err)
	}
	return events, nil
}
