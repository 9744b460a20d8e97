package entity

import "time"

// Snapshot is one persisted key-value row. Application state (menu, orders,
// purchase history, images) is stored as whole JSON snapshots keyed by name,
// mirroring the key-value store the mobile app used.
type Snapshot struct {
	Key       string    `gorm:"size:100;primary_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Snapshot model.
func (Snapshot) TableName() string {
	return "snapshots"
}
