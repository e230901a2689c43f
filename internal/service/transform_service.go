package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rewind/internal/fingerprint"
	"rewind/internal/model"
	"rewind/internal/prompt"
	"rewind/internal/pubsub"
	"rewind/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrEraNotFound       = errors.New("era not found")
	ErrDeviceBlocked     = errors.New("device blocked")
	ErrUsageLimitReached = errors.New("free usage limit reached")
)

// CreateTransformationRequest describes one generation request. Exactly one
// identity applies: an authenticated UserID, or signal Readings for an
// anonymous visitor passing the usage gate.
type CreateTransformationRequest struct {
	UserID    *string
	Readings  *fingerprint.Readings
	EraSlug   string
	PhotoPath string
}

// TransformService creates generation requests. Anonymous requests are
// checked against the usage gate before anything is persisted; the actual
// image generation is performed by a downstream worker consuming the
// published events.
type TransformService interface {
	Create(ctx context.Context, req CreateTransformationRequest) (*model.Transformation, error)
	ListForUser(ctx context.Context, userID string, limit, offset int) ([]model.Transformation, error)
}

type transformService struct {
	transformationRepo repository.TransformationRepository
	eraRepo            repository.EraRepository
	gate               GateService
	publisher          pubsub.Publisher
	requestTopic       string
	logger             zerolog.Logger
}

// NewTransformService creates a new TransformService.
func NewTransformService(
	transformationRepo repository.TransformationRepository,
	eraRepo repository.EraRepository,
	gate GateService,
	publisher pubsub.Publisher,
	requestTopic string,
	logger zerolog.Logger,
) TransformService {
	return &transformService{
		transformationRepo: transformationRepo,
		eraRepo:            eraRepo,
		gate:               gate,
		publisher:          publisher,
		requestTopic:       requestTopic,
		logger:             logger.With().Str("component", "transform").Logger(),
	}
}

func (s *transformService) Create(ctx context.Context, req CreateTransformationRequest) (*model.Transformation, error) {
	era, err := s.eraRepo.GetBySlug(ctx, req.EraSlug)
	if err != nil {
		return nil, err
	}
	if era == nil || !era.IsActive {
		return nil, ErrEraNotFound
	}

	var fingerprintHash *string
	if req.UserID == nil {
		if req.Readings == nil {
			return nil, fmt.Errorf("anonymous transformation request without signal readings")
		}
		state, err := s.gate.Resolve(ctx, *req.Readings)
		if err != nil {
			return nil, fmt.Errorf("resolving usage gate: %w", err)
		}
		if state.IsBlocked {
			return nil, ErrDeviceBlocked
		}
		if state.HasUsedFreeTransform {
			return nil, ErrUsageLimitReached
		}
		fingerprintHash = &state.FingerprintHash
	}

	t := &model.Transformation{
		TransformationID: uuid.NewString(),
		UserID:           req.UserID,
		FingerprintHash:  fingerprintHash,
		EraSlug:          era.Slug,
		PhotoPath:        req.PhotoPath,
		Prompt: prompt.Build(prompt.Input{
			EraSlug:     era.Slug,
			EraName:     era.Name,
			StartYear:   era.StartYear,
			EndYear:     era.EndYear,
			Celebrities: era.Celebrities,
		}),
		Status: model.TransformationPending,
	}
	if err := s.transformationRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.publishRequested(ctx, t)
	return t, nil
}

func (s *transformService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]model.Transformation, error) {
	return s.transformationRepo.ListByUserID(ctx, userID, limit, offset)
}

// publishRequested hands the pending transformation to the generation
// worker's topic. Best-effort: the row is already persisted and a stalled
// event can be re-driven from it.
func (s *transformService) publishRequested(ctx context.Context, t *model.Transformation) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"type":              "transformation.requested",
		"transformation_id": t.TransformationID,
		"era_slug":          t.EraSlug,
		"photo_path":        t.PhotoPath,
		"occurred_at":       time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("marshaling transformation event")
		return
	}
	if _, err := s.publisher.Publish(ctx, s.requestTopic, payload); err != nil {
		s.logger.Warn().Err(err).
			Str("transformation_id", t.TransformationID).
			Msg("publishing transformation event")
	}
}
