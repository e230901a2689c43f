package dto

import "time"

// UploadCreateDTO requests a presigned upload destination for a photo.
type UploadCreateDTO struct {
	ContentType string `json:"content_type" validate:"required"`
}

// UploadResponseDTO carries the presigned PUT URL the client uploads to.
type UploadResponseDTO struct {
	UploadURL   string    `json:"upload_url"`
	StoragePath string    `json:"storage_path"`
	ExpiresAt   time.Time `json:"expires_at"`
}
