package models

import "time"

// SelectionChange is one row of the settings selection history.
type SelectionChange struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Field     string    `gorm:"size:32;not null;index" json:"field"`
	Previous  string    `gorm:"type:text" json:"previous"`
	Value     string    `gorm:"type:text" json:"value"`
	ChangedAt time.Time `gorm:"not null;index" json:"changedAt"`
}
