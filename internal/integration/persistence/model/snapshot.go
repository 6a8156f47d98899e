// Package model defines database models for persistence layer.
package model

import "time"

// SnapshotModel represents the snapshots key-value table. Each namespace
// holds exactly one row with the full ledger state as a JSON blob.
// The Data column carries no explicit type so gorm picks the per-dialect
// bytes type: blob on SQLite, bytea on Postgres.
type SnapshotModel struct {
	Namespace string    `gorm:"type:varchar(64);primaryKey"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SnapshotModel.
func (SnapshotModel) TableName() string {
	return "snapshots"
}
