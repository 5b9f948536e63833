package models

import (
	"time"

	"gorm.io/gorm"
)

// FileLog mencatat file SAP yang sudah diproses supaya tidak diproses dua
// kali.
type FileLog struct {
	gorm.Model
	Filename     string    `json:"filename" gorm:"unique"`
	DateModified time.Time `json:"date_modified"`
	RowCount     int       `json:"row_count"`
	Status       string    `json:"status" gorm:"default:'processed'"`
}
