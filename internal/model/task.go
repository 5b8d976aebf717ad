package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents the workflow label of a task. There is no enforced
// transition graph: an owner may move a task between any two statuses,
// including re-opening a completed one.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority represents the urgency label of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task represents a task record owned by exactly one user. The owner is set
// at creation and never changes.
type Task struct {
	ID          uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID    `json:"user_id" gorm:"type:char(36);not null;index"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Description string       `json:"description" gorm:"type:text;not null"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(20);not null;default:'todo';index"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// OwnedBy reports whether userID owns the task. Both update and delete go
// through this single predicate.
func (t *Task) OwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}
