package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Title       string               `gorm:"size:255;not null" json:"title"`
	Description *string              `json:"description,omitempty"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	UserID      string               `gorm:"index;size:36;not null" json:"-"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
