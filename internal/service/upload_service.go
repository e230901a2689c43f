package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrUnsupportedMediaType = errors.New("unsupported media type")

// uploadURLTTL bounds how long a presigned PUT stays usable.
const uploadURLTTL = 15 * time.Minute

var extensionByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// UploadTarget is a presigned destination for one photo upload.
type UploadTarget struct {
	UploadURL   string    `json:"upload_url"`
	StoragePath string    `json:"storage_path"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UploadService issues presigned PUT URLs for photo uploads to the storage
// bucket. Clients upload directly; this service never proxies image bytes.
type UploadService interface {
	CreateUploadURL(ctx context.Context, contentType string) (*UploadTarget, error)
}

type uploadService struct {
	presignClient *s3.PresignClient
	bucket        string
}

// NewUploadService creates a new UploadService.
func NewUploadService(s3Client *s3.Client, bucket string) UploadService {
	return &uploadService{
		presignClient: s3.NewPresignClient(s3Client),
		bucket:        bucket,
	}
}

func (s *uploadService) CreateUploadURL(ctx context.Context, contentType string) (*UploadTarget, error) {
	ext, ok := extensionByContentType[strings.ToLower(contentType)]
	if !ok {
		return nil, ErrUnsupportedMediaType
	}
	storagePath := path.Join("uploads", uuid.NewString()+ext)

	request, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(storagePath),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(uploadURLTTL))
	if err != nil {
		return nil, fmt.Errorf("presigning upload for %s: %w", storagePath, err)
	}

	return &UploadTarget{
		UploadURL:   request.URL,
		StoragePath: storagePath,
		ExpiresAt:   time.Now().Add(uploadURLTTL),
	}, nil
}
