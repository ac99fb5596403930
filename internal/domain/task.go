package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the processing state of a task.
type TaskStatus string

// Possible task status values. No code path currently advances a task past
// pending; the completed state exists for the processing logic to come.
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task is a background task managed by the worker service. CreatedAt is an
// ISO-8601 UTC timestamp assigned at creation and never updated. Payload is
// optional and serializes as an explicit null when absent.
type Task struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Status    TaskStatus     `json:"status"`
	Payload   map[string]any `json:"payload"`
	CreatedAt string         `json:"created_at"`
}

// NewTask creates a Task with a server-generated identifier, pending status
// and the current UTC time as creation timestamp.
// Returns ErrNameRequired if name is empty.
func NewTask(name string, payload map[string]any) (*Task, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	return &Task{
		ID:        uuid.NewString(),
		Name:      name,
		Status:    TaskStatusPending,
		Payload:   payload,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
