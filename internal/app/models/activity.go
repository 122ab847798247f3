package models

import "time"

// ActivityLog is an append-only audit trail entry ('activity_logs' table)
type ActivityLog struct {
	ID          int64     `json:"id" db:"id"`
	ActorID     int64     `json:"actorId" db:"actor_id"`
	EventType   string    `json:"eventType" db:"event_type" example:"STUDENT_ADMITTED"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
