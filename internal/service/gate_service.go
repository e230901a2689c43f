package service

import (
	"context"
	"encoding/json"
	"time"

	"rewind/internal/config"
	"rewind/internal/fingerprint"
	"rewind/internal/model"
	"rewind/internal/pubsub"
	"rewind/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// GateService is the anonymous usage gate: it resolves a browser's signal
// readings to a quota state and records consumed free transformations.
type GateService interface {
	// Resolve composes a fingerprint from the readings and resolves it
	// against the quota store: exact hash match first, then similarity
	// search over candidates sharing a canvas or webgl hash, else a new
	// device. Store failures follow the configured resolution-error policy.
	Resolve(ctx context.Context, readings fingerprint.Readings) (*model.GateState, error)
	// RecordTransformation counts one consumed free transformation against
	// the readings' fingerprint. The primary quota write is atomic; the
	// legacy mirror and the usage event are best-effort and never fail the
	// call. A primary-store failure is logged and answered with an
	// optimistic state rather than an error (fail-open).
	RecordTransformation(ctx context.Context, readings fingerprint.Readings) (*model.GateState, error)
}

// UsageEvent is published after each recorded transformation for the
// downstream analytics/abuse pipeline.
type UsageEvent struct {
	Type                string    `json:"type"`
	FingerprintHash     string    `json:"fingerprint_hash"`
	TransformationCount int       `json:"transformation_count"`
	MatchedVia          string    `json:"matched_via,omitempty"`
	OccurredAt          time.Time `json:"occurred_at"`
}

type gateService struct {
	quotaRepo  repository.QuotaRepository
	legacyRepo repository.LegacyUsageRepository
	publisher  pubsub.Publisher
	logger     zerolog.Logger

	similarityThreshold int
	candidateLimit      int
	freeTransformLimit  int
	onResolutionError   string
	legacyMirror        bool
	usageTopic          string

	// Collapses concurrent resolutions of the same fingerprint (e.g. a
	// re-mounting client firing the resolve call twice) into one store hit.
	resolving singleflight.Group
}

// NewGateService creates a new GateService. publisher may be nil when event
// publishing is disabled (no GCP project configured).
func NewGateService(
	quotaRepo repository.QuotaRepository,
	legacyRepo repository.LegacyUsageRepository,
	publisher pubsub.Publisher,
	cfg *config.Config,
	logger zerolog.Logger,
) GateService {
	return &gateService{
		quotaRepo:           quotaRepo,
		legacyRepo:          legacyRepo,
		publisher:           publisher,
		logger:              logger.With().Str("component", "gate").Logger(),
		similarityThreshold: cfg.SimilarityThreshold,
		candidateLimit:      cfg.CandidateLimit,
		freeTransformLimit:  cfg.FreeTransformLimit,
		onResolutionError:   cfg.OnResolutionError,
		legacyMirror:        cfg.LegacyMirror,
		usageTopic:          cfg.PubSubUsageTopic,
	}
}

// LegacyKey derives the synthetic key the old IP-keyed usage table is
// written under for a given fingerprint hash.
func LegacyKey(fingerprintHash string) string {
	return "fp_" + fingerprintHash
}

func (s *gateService) Resolve(ctx context.Context, readings fingerprint.Readings) (*model.GateState, error) {
	fp := fingerprint.Compose(readings)
	v, err, _ := s.resolving.Do(fp.FingerprintHash, func() (interface{}, error) {
		return s.resolve(ctx, fp)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.GateState), nil
}

func (s *gateService) resolve(ctx context.Context, fp fingerprint.Data) (*model.GateState, error) {
	rec, err := s.quotaRepo.FindByHash(ctx, fp.FingerprintHash)
	if err != nil {
		return s.resolutionFailed(fp, err)
	}
	if rec != nil {
		return s.stateFromRecord(fp, rec, model.MatchedExact), nil
	}

	candidates, err := s.quotaRepo.FindCandidates(ctx, fp.CanvasHash, fp.WebGLHash, s.candidateLimit)
	if err != nil {
		return s.resolutionFailed(fp, err)
	}
	fields := fp.Fields()
	for i := range candidates {
		score := fingerprint.Score(fields, candidates[i].Fields())
		if score >= s.similarityThreshold {
			s.logger.Debug().
				Str("fingerprint", fp.FingerprintHash).
				Str("matched", candidates[i].FingerprintHash).
				Int("score", score).
				Msg("adopted similar device")
			return s.stateFromRecord(fp, &candidates[i], model.MatchedSimilar), nil
		}
	}

	return s.freshState(fp), nil
}

// resolutionFailed applies the configured error policy: deny surfaces the
// failure, allow answers as a brand-new unblocked visitor. Either way the
// error is logged; a fresh answer is never silently confused with a
// successful lookup.
func (s *gateService) resolutionFailed(fp fingerprint.Data, err error) (*model.GateState, error) {
	if s.onResolutionError == config.OnErrorDeny {
		return nil, err
	}
	s.logger.Warn().Err(err).
		Str("fingerprint", fp.FingerprintHash).
		Msg("quota resolution failed, answering as new visitor")
	return s.freshState(fp), nil
}

func (s *gateService) RecordTransformation(ctx context.Context, readings fingerprint.Readings) (*model.GateState, error) {
	fp := fingerprint.Compose(readings)

	var state *model.GateState
	rec, err := s.quotaRepo.IncrementUsage(ctx, fp)
	if err != nil {
		// Fail open: the client already applied its optimistic update and
		// a quota write failure must not surface as a user-facing error.
		s.logger.Error().Err(err).
			Str("fingerprint", fp.FingerprintHash).
			Msg("quota increment failed")
		state = &model.GateState{
			FingerprintHash:      fp.FingerprintHash,
			HasUsedFreeTransform: true,
			TransformationCount:  1,
			MatchedVia:           model.MatchedNew,
		}
	} else {
		state = s.stateFromRecord(fp, rec, model.MatchedExact)
	}

	if s.legacyMirror {
		if err := s.legacyRepo.Increment(ctx, LegacyKey(fp.FingerprintHash)); err != nil {
			s.logger.Warn().Err(err).
				Str("fingerprint", fp.FingerprintHash).
				Msg("legacy usage mirror failed")
		}
	}

	s.publishUsage(ctx, state)
	return state, nil
}

func (s *gateService) publishUsage(ctx context.Context, state *model.GateState) {
	if s.publisher == nil {
		return
	}
	event := UsageEvent{
		Type:                "transformation.recorded",
		FingerprintHash:     state.FingerprintHash,
		TransformationCount: state.TransformationCount,
		MatchedVia:          state.MatchedVia,
		OccurredAt:          time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn().Err(err).Msg("marshaling usage event")
		return
	}
	if _, err := s.publisher.Publish(ctx, s.usageTopic, payload); err != nil {
		s.logger.Warn().Err(err).Msg("publishing usage event")
	}
}

func (s *gateService) stateFromRecord(fp fingerprint.Data, rec *model.QuotaRecord, via string) *model.GateState {
	return &model.GateState{
		FingerprintHash:      fp.FingerprintHash,
		IsBlocked:            rec.IsBlocked,
		HasUsedFreeTransform: rec.TransformationCount >= s.freeTransformLimit,
		TransformationCount:  rec.TransformationCount,
		MatchedVia:           via,
	}
}

func (s *gateService) freshState(fp fingerprint.Data) *model.GateState {
	return &model.GateState{
		FingerprintHash: fp.FingerprintHash,
		MatchedVia:      model.MatchedNew,
	}
}
