package model

import (
	"time"

	"rewind/internal/fingerprint"
)

// QuotaRecord is one row of anonymous_usage: the persisted usage state of a
// distinct device fingerprint. Signal hashes are stored alongside the master
// hash so similarity search can match a returning device whose master hash
// changed (incognito, VPN). Rows are created by the first recorded
// transformation and never deleted by this service.
type QuotaRecord struct {
	FingerprintHash     string    `db:"fingerprint_hash" json:"fingerprint_hash"`
	CanvasHash          string    `db:"canvas_hash" json:"canvas_hash"`
	WebGLHash           string    `db:"webgl_hash" json:"webgl_hash"`
	AudioHash           string    `db:"audio_hash" json:"audio_hash"`
	ScreenHash          string    `db:"screen_hash" json:"screen_hash"`
	Timezone            string    `db:"timezone" json:"timezone"`
	Language            string    `db:"language" json:"language"`
	Platform            string    `db:"platform" json:"platform"`
	DeviceMemory        *int      `db:"device_memory" json:"device_memory,omitempty"`
	CPUCores            *int      `db:"cpu_cores" json:"cpu_cores,omitempty"`
	TransformationCount int       `db:"transformation_count" json:"transformation_count"`
	IsBlocked           bool      `db:"is_blocked" json:"is_blocked"`
	FirstSeenAt         time.Time `db:"first_seen_at" json:"first_seen_at"`
	LastSeenAt          time.Time `db:"last_seen_at" json:"last_seen_at"`
}

// Fields returns the record's comparable field-set for similarity scoring.
// Empty string columns (legacy rows) are treated as absent.
func (q *QuotaRecord) Fields() fingerprint.FieldSet {
	return fingerprint.FieldSet{
		CanvasHash:   optional(q.CanvasHash),
		WebGLHash:    optional(q.WebGLHash),
		AudioHash:    optional(q.AudioHash),
		ScreenHash:   optional(q.ScreenHash),
		Timezone:     optional(q.Timezone),
		Platform:     optional(q.Platform),
		DeviceMemory: q.DeviceMemory,
		CPUCores:     q.CPUCores,
	}
}

// LegacyUsageRecord is one row of usage_tracking, the older coarse-grained
// quota table kept for backward compatibility. Keyed by a synthetic
// "fp_<hash>" string where the old schema stored an IP.
type LegacyUsageRecord struct {
	Key                 string    `db:"key" json:"key"`
	TransformationCount int       `db:"transformation_count" json:"transformation_count"`
	FirstUsedAt         time.Time `db:"first_used_at" json:"first_used_at"`
	LastUsedAt          time.Time `db:"last_used_at" json:"last_used_at"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
