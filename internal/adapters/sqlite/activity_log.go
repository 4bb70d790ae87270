package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/sgmi/internal/models"
	"github.com/example/sgmi/internal/ports/secondary"
)

// ActivityLog implements secondary.ActivityLog over the activity_log table.
// Rows are append-only; there is no update or delete path.
type ActivityLog struct {
	db  *sql.DB
	now func() time.Time
}

// NewActivityLog creates a new SQLite activity log.
func NewActivityLog(db *sql.DB) *ActivityLog {
	return &ActivityLog{db: db, now: time.Now}
}

// Append writes one entry, assigning ID and timestamp when absent.
// Kinds outside the closed union are rejected before touching the table.
func (l *ActivityLog) Append(ctx context.Context, entry models.ActivityEntry) error {
	if err := models.ValidateActivityKind(entry.Kind); err != nil {
		return err
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Date == "" {
		entry.Date = l.now().UTC().Format(time.RFC3339)
	}

	_, err := l.db.ExecContext(ctx,
		"INSERT INTO activity_log (id, kind, entity_id, detail, user, ts) VALUES (?, ?, ?, ?, ?, ?)",
		entry.ID, string(entry.Kind), nullable(entry.EntityID), nullable(entry.Detail), nullable(entry.User), entry.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (l *ActivityLog) List(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	query := "SELECT id, kind, entity_id, detail, user, ts FROM activity_log ORDER BY ts DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity entries: %w", err)
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var (
			entry    models.ActivityEntry
			kind     string
			entityID sql.NullString
			detail   sql.NullString
			user     sql.NullString
		)
		if err := rows.Scan(&entry.ID, &kind, &entityID, &detail, &user, &entry.Date); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entry.Kind = models.ActivityKind(kind)
		entry.EntityID = entityID.String
		entry.Detail = detail.String
		entry.User = user.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}

// Ensure ActivityLog implements the interface
var _ secondary.ActivityLog = (*ActivityLog)(nil)
