package model

import (
	"time"

	"taskdesk.com/taskdesk/internal/constants"
)

type Task struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// Deadline is a calendar-date boundary; Hour carries a full timestamp
	// of which only the time of day is meaningful. Tasks with a nil Hour
	// expire on the deadline alone.
	Deadline time.Time  `json:"deadline"`
	Hour     *time.Time `json:"hour,omitempty"`

	Priority constants.Priority   `gorm:"type:varchar(20);not null" json:"priority"`
	Status   constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`

	CreatorID string `gorm:"size:36;not null" json:"creator_id"`
	Creator   *User  `json:"-"`

	Users []User `gorm:"many2many:employees_tasks" json:"users,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
