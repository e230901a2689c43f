package service

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// SecretService reads deployment secrets (e.g. the JWT verification secret)
// from GCP Secret Manager when they are not provided via the environment.
type SecretService interface {
	GetSecret(ctx context.Context, name string) (string, error)
	Close() error
}

type secretService struct {
	client    *secretmanager.Client
	projectID string
}

// NewSecretService creates a new SecretService.
// Note: Secret Manager requires a real GCP project even for local
// development; local setups normally set the secret via env instead.
func NewSecretService(ctx context.Context, projectID string) (SecretService, error) {
	if projectID == "" {
		return nil, fmt.Errorf("GCP project ID is not set")
	}

	var opts []option.ClientOption
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}

	return &secretService{client: client, projectID: projectID}, nil
}

func (s *secretService) GetSecret(ctx context.Context, name string) (string, error) {
	versionPath := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", s.projectID, name)
	result, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: versionPath,
	})
	if err != nil {
		return "", fmt.Errorf("failed to access secret %s: %w", name, err)
	}
	return string(result.Payload.Data), nil
}

func (s *secretService) Close() error {
	return s.client.Close()
}
