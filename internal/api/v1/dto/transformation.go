package dto

import "time"

// TransformationCreateDTO is an incoming generation request. Signals are
// required for anonymous callers so the usage gate can resolve the device;
// authenticated callers may omit them.
type TransformationCreateDTO struct {
	EraSlug   string             `json:"era_slug" validate:"required"`
	PhotoPath string             `json:"photo_path" validate:"required"`
	Signals   *SignalReadingsDTO `json:"signals"`
}

// TransformationResponseDTO is returned in API responses.
type TransformationResponseDTO struct {
	TransformationID string     `json:"transformation_id"`
	EraSlug          string     `json:"era_slug"`
	PhotoPath        string     `json:"photo_path"`
	Prompt           string     `json:"prompt"`
	Status           string     `json:"status"`
	ResultPath       *string    `json:"result_path,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}
