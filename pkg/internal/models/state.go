package models

import "time"

// StateEntry holds process-wide scalar state, currently only the signed-in
// profile pointer.
type StateEntry struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
