package models

import "time"

// DataRecord is one persisted aggregate: the JSON value for a datastore key
// ("bins", "purchase-orders", ...). One row per key, overwritten on save.
type DataRecord struct {
	Key       string    `json:"key" gorm:"primaryKey;size:64"`
	Value     []byte    `json:"value" gorm:"type:bytes"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy int       `json:"updated_by"`
}
