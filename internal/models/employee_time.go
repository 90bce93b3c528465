package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeTime is one persisted clock-in/clock-out session. Entry and exit
// times are stored as "2006-01-02 15:04:05" text so range filters compare
// lexically.
type EmployeeTime struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EmployeeID string  `gorm:"not null;index:idx_employee_entry,priority:1;uniqueIndex:idx_employee_open,where:exit_time IS NULL" json:"employee_id"`
	EntryTime  string  `gorm:"not null;index:idx_employee_entry,priority:2" json:"entry_time"`
	ExitTime   *string `json:"exit_time"` // nil while the session is open
	Hours      float64 `gorm:"not null;default:0" json:"hours"`
}

// TableName keeps the table name stable across model renames.
func (EmployeeTime) TableName() string {
	return "employee_time"
}

// BeforeCreate assigns a new id when none is set.
func (e *EmployeeTime) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
