// Package models contains database model definitions.
package models

// Setting represents a key/value configuration setting stored in the
// database. Boolean flags are encoded as the strings "true" and "false".
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique"`
	Value string `gorm:"type:text"`
}
