package model

import "time"

// Era is one historical era a photo can be transformed into.
type Era struct {
	EraID       string    `db:"era_id" json:"era_id"`
	Slug        string    `db:"slug" json:"slug"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	StartYear   int       `db:"start_year" json:"start_year"`
	EndYear     int       `db:"end_year" json:"end_year"`
	Celebrities []string  `db:"celebrities" json:"celebrities"`
	SortOrder   int       `db:"sort_order" json:"sort_order"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
