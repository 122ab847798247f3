package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkamau/collegehub/internal/app/models"
	"github.com/mkamau/collegehub/internal/db"
)

// IActivityRepository defines the interface for the append-only audit trail
type IActivityRepository interface {
	LogActivity(ctx context.Context, actorID int64, eventType, description string) error
	ListRecent(ctx context.Context, limit int) ([]*models.ActivityLog, error)
}

// ActivityRepository handles activity log database operations
type ActivityRepository struct {
	db db.DBTX
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: pool}
}

// LogActivity appends one audit trail entry
func (r *ActivityRepository) LogActivity(ctx context.Context, actorID int64, eventType, description string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO activity_logs (actor_id, event_type, description)
		VALUES ($1, $2, $3)`,
		actorID, eventType, description)

	if err != nil {
		return fmt.Errorf("error writing activity log: %w", err)
	}

	return nil
}

// ListRecent retrieves the most recent audit trail entries
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, actor_id, event_type, description, created_at
		FROM activity_logs
		ORDER BY id DESC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("error listing activity logs: %w", err)
	}
	defer rows.Close()

	var entries []*models.ActivityLog
	for rows.Next() {
		e := &models.ActivityLog{}
		if err := rows.Scan(&e.ID, &e.ActorID, &e.EventType, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning activity log: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity logs: %w", err)
	}

	return entries, nil
}
