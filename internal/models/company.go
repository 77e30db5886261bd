package model

import "time"

type Company struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Name    string `gorm:"size:150;uniqueIndex;not null" json:"name"`
	Phone   string `gorm:"size:13;uniqueIndex;not null" json:"phone"`
	Address string `gorm:"size:150;uniqueIndex;not null" json:"address"`

	// A user may create at most one company.
	CreatorID string `gorm:"size:36;uniqueIndex;not null" json:"creator_id"`
	Creator   *User  `json:"creator,omitempty"`

	Users []User `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
