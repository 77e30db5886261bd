package model

import (
	"time"

	"taskdesk.com/taskdesk/internal/constants"
)

type User struct {
	ID       string               `gorm:"primaryKey;size:36" json:"id"`
	Name     string               `gorm:"size:150" json:"name"`
	Surname  string               `gorm:"size:150" json:"surname"`
	Email    string               `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Username string               `gorm:"size:150" json:"username"`
	Password string               `gorm:"size:150;not null" json:"-"`
	Role     constants.Role       `gorm:"type:varchar(20);not null" json:"role"`
	Status   constants.UserStatus `gorm:"type:varchar(20);not null" json:"status"`

	CompanyID *string  `gorm:"size:36" json:"company_id,omitempty"`
	Company   *Company `json:"-"`

	// Tasks the user is assigned to; CreatedTasks the user authored.
	Tasks        []Task `gorm:"many2many:employees_tasks" json:"-"`
	CreatedTasks []Task `gorm:"foreignKey:CreatorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
