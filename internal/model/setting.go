package model

import "time"

// Setting is one key of the flat key/value configuration store. Settings
// are addressed by key, not id, and consumers must tolerate absent keys.
type Setting struct {
	ID          int64     `db:"id" json:"id"`
	Key         string    `db:"key" json:"key"`
	Value       string    `db:"value" json:"value"`
	Type        string    `db:"type" json:"type"` // string/number/boolean/json
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
