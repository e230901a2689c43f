package model

import "time"

// Transformation statuses. The generation worker owns the transitions past
// pending; this service only ever creates pending rows.
const (
	TransformationPending  = "pending"
	TransformationComplete = "complete"
	TransformationFailed   = "failed"
)

// Transformation is one generation request. Exactly one of UserID and
// FingerprintHash identifies the requester: authenticated users by account,
// anonymous visitors by device fingerprint.
type Transformation struct {
	TransformationID string     `db:"transformation_id" json:"transformation_id"`
	UserID           *string    `db:"user_id" json:"user_id,omitempty"`
	FingerprintHash  *string    `db:"fingerprint_hash" json:"fingerprint_hash,omitempty"`
	EraSlug          string     `db:"era_slug" json:"era_slug"`
	PhotoPath        string     `db:"photo_path" json:"photo_path"`
	Prompt           string     `db:"prompt" json:"prompt"`
	Status           string     `db:"status" json:"status"`
	ResultPath       *string    `db:"result_path" json:"result_path,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	CompletedAt      *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}
