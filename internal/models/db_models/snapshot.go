package db_models

import (
	"time"

	"gorm.io/datatypes"
)

// Snapshot is the single durable row carrying the serialized AppState.
// Writes are last-write-wins; there is exactly one row.
type Snapshot struct {
	ID        uint           `gorm:"primaryKey"`
	Data      datatypes.JSON `gorm:"type:json"`
	UpdatedAt time.Time
}
