package models

import (
	"time"

	"gorm.io/gorm"
)

// Base is the base model for all entities. IDs are auto-increment integers
// because they are part of the public URL contract (/blog/{id}/).
type Base struct {
	ID        uint           `json:"id"       gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created"`
	UpdatedAt time.Time      `json:"modified"`
	DeletedAt gorm.DeletedAt `json:"-"        gorm:"index"`
}
