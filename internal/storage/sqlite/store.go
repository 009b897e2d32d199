// Package sqlite provides the SQLite-backed storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mapauhernandez/happy-robot-acme-demo/internal/board"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/platform/storage/sqlitemigrate"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/storage"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store persists loads, negotiation events, and call logs in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Store = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SeedLoads replaces the loads table when its IDs differ from the seed set.
func (s *Store) SeedLoads(ctx context.Context, loads []board.Load) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if len(loads) == 0 {
		return fmt.Errorf("seed loads are required")
	}

	existing, err := s.loadIDs(ctx)
	if err != nil {
		return err
	}
	if sameIDSet(existing, loads) {
		return nil
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM loads"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear stale loads: %w", err)
	}
	for _, load := range loads {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO loads (
			   load_id, origin, destination,
			   pickup_datetime, delivery_datetime,
			   equipment_type, loadboard_rate, notes,
			   weight, commodity_type, num_of_pieces, miles, dimensions
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			load.LoadID,
			load.Origin,
			load.Destination,
			toMillis(load.PickupDatetime),
			toMillis(load.DeliveryDatetime),
			load.EquipmentType,
			load.LoadboardRate,
			load.Notes,
			load.Weight,
			load.CommodityType,
			load.NumOfPieces,
			load.Miles,
			load.Dimensions,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert seed load %s: %w", load.LoadID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed loads: %w", err)
	}
	return nil
}

// ListLoads returns every stored load ordered by load ID.
func (s *Store) ListLoads(ctx context.Context) ([]board.Load, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT load_id, origin, destination,
		        pickup_datetime, delivery_datetime,
		        equipment_type, loadboard_rate, notes,
		        weight, commodity_type, num_of_pieces, miles, dimensions
		   FROM loads ORDER BY load_id`)
	if err != nil {
		return nil, fmt.Errorf("query loads: %w", err)
	}
	defer rows.Close()

	var loads []board.Load
	for rows.Next() {
		var load board.Load
		var pickup, delivery int64
		var notes sql.NullString
		if err := rows.Scan(
			&load.LoadID,
			&load.Origin,
			&load.Destination,
			&pickup,
			&delivery,
			&load.EquipmentType,
			&load.LoadboardRate,
			&notes,
			&load.Weight,
			&load.CommodityType,
			&load.NumOfPieces,
			&load.Miles,
			&load.Dimensions,
		); err != nil {
			return nil, fmt.Errorf("scan load row: %w", err)
		}
		load.PickupDatetime = fromMillis(pickup)
		load.DeliveryDatetime = fromMillis(delivery)
		load.Notes = notes.String
		loads = append(loads, load)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate load rows: %w", err)
	}
	return loads, nil
}

// InsertNegotiation appends one negotiation event and returns its row id.
func (s *Store) InsertNegotiation(ctx context.Context, event storage.NegotiationEvent) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	sentiment := strings.TrimSpace(event.CallSentiment)
	commodity := strings.TrimSpace(event.Commodity)
	if sentiment == "" {
		return 0, fmt.Errorf("call sentiment is required")
	}
	if commodity == "" {
		return 0, fmt.Errorf("commodity is required")
	}
	if event.PostedPrice < 0 || event.FinalPrice < 0 || event.TotalNegotiations < 0 {
		return 0, fmt.Errorf("negotiation prices and counts must not be negative")
	}
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	accepted := 0
	if event.LoadAccepted {
		accepted = 1
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO negotiations (
		   load_accepted, posted_price, final_price,
		   total_negotiations, call_sentiment, commodity, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		accepted,
		event.PostedPrice,
		event.FinalPrice,
		event.TotalNegotiations,
		sentiment,
		commodity,
		toMillis(createdAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert negotiation: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("negotiation row id: %w", err)
	}
	return id, nil
}

// ListNegotiations returns every negotiation event, newest first.
func (s *Store) ListNegotiations(ctx context.Context) ([]storage.NegotiationEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, load_accepted, posted_price, final_price,
		        total_negotiations, call_sentiment, commodity, created_at
		   FROM negotiations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query negotiations: %w", err)
	}
	defer rows.Close()

	var events []storage.NegotiationEvent
	for rows.Next() {
		var (
			event     storage.NegotiationEvent
			accepted  int
			createdAt int64
		)
		if err := rows.Scan(
			&event.ID,
			&accepted,
			&event.PostedPrice,
			&event.FinalPrice,
			&event.TotalNegotiations,
			&event.CallSentiment,
			&event.Commodity,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan negotiation row: %w", err)
		}
		event.LoadAccepted = accepted != 0
		event.CreatedAt = fromMillis(createdAt)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate negotiation rows: %w", err)
	}
	return events, nil
}

// InsertCall appends one raw call payload. A missing ID gets a fresh UUID.
func (s *Store) InsertCall(ctx context.Context, record storage.CallRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(record.ID)
	if id == "" {
		id = uuid.NewString()
	}
	if len(record.Payload) == 0 || !json.Valid(record.Payload) {
		return fmt.Errorf("call payload must be valid JSON")
	}
	receivedAt := record.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	if _, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO calls (id, payload, received_at) VALUES (?, ?, ?)",
		id, string(record.Payload), toMillis(receivedAt),
	); err != nil {
		return fmt.Errorf("insert call: %w", err)
	}
	return nil
}

// ListCalls returns every stored call payload, newest first.
func (s *Store) ListCalls(ctx context.Context) ([]storage.CallRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT id, payload, received_at FROM calls ORDER BY received_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("query calls: %w", err)
	}
	defer rows.Close()

	var records []storage.CallRecord
	for rows.Next() {
		var (
			record     storage.CallRecord
			payload    string
			receivedAt int64
		)
		if err := rows.Scan(&record.ID, &payload, &receivedAt); err != nil {
			return nil, fmt.Errorf("scan call row: %w", err)
		}
		record.Payload = json.RawMessage(payload)
		record.ReceivedAt = fromMillis(receivedAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate call rows: %w", err)
	}
	return records, nil
}

func (s *Store) loadIDs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.sqlDB.QueryContext(ctx, "SELECT load_id FROM loads")
	if err != nil {
		return nil, fmt.Errorf("query load ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan load id: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate load ids: %w", err)
	}
	return ids, nil
}

func sameIDSet(existing map[string]struct{}, loads []board.Load) bool {
	if len(existing) != len(loads) {
		return false
	}
	for _, load := range loads {
		if _, ok := existing[load.LoadID]; !ok {
			return false
		}
	}
	return true
}
