package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"rewind/internal/fingerprint"
	"rewind/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEraRepo struct {
	eras map[string]*model.Era
}

func (r *fakeEraRepo) ListActive(ctx context.Context) ([]model.Era, error) {
	var out []model.Era
	for _, e := range r.eras {
		if e.IsActive {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEraRepo) GetBySlug(ctx context.Context, slug string) (*model.Era, error) {
	e, ok := r.eras[slug]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

type fakeTransformationRepo struct {
	created []*model.Transformation
	fail    bool
}

func (r *fakeTransformationRepo) Create(ctx context.Context, t *model.Transformation) error {
	if r.fail {
		return errors.New("insert failed")
	}
	t.CreatedAt = time.Now()
	r.created = append(r.created, t)
	return nil
}

func (r *fakeTransformationRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]model.Transformation, error) {
	var out []model.Transformation
	for _, t := range r.created {
		if t.UserID != nil && *t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

type fakeGate struct {
	state *model.GateState
	err   error
}

func (g *fakeGate) Resolve(ctx context.Context, readings fingerprint.Readings) (*model.GateState, error) {
	return g.state, g.err
}

func (g *fakeGate) RecordTransformation(ctx context.Context, readings fingerprint.Readings) (*model.GateState, error) {
	return g.state, g.err
}

func sixtiesEra() *model.Era {
	return &model.Era{
		EraID:       "era-sixties",
		Slug:        "swinging-sixties",
		Name:        "Swinging Sixties",
		StartYear:   1960,
		EndYear:     1969,
		Celebrities: []string{"Twiggy", "Paul McCartney"},
		IsActive:    true,
	}
}

func newTransformFixture(gate GateService) (TransformService, *fakeTransformationRepo) {
	repo := &fakeTransformationRepo{}
	eras := &fakeEraRepo{eras: map[string]*model.Era{"swinging-sixties": sixtiesEra()}}
	svc := NewTransformService(repo, eras, gate, nil, "transformation-events", zerolog.Nop())
	return svc, repo
}

func TestCreateUnknownEra(t *testing.T) {
	svc, _ := newTransformFixture(&fakeGate{})

	_, err := svc.Create(context.Background(), CreateTransformationRequest{
		EraSlug:   "victorian",
		PhotoPath: "uploads/a.jpg",
	})
	assert.ErrorIs(t, err, ErrEraNotFound)
}

func TestCreateInactiveEra(t *testing.T) {
	era := sixtiesEra()
	era.IsActive = false
	repo := &fakeTransformationRepo{}
	eras := &fakeEraRepo{eras: map[string]*model.Era{era.Slug: era}}
	svc := NewTransformService(repo, eras, &fakeGate{}, nil, "transformation-events", zerolog.Nop())

	_, err := svc.Create(context.Background(), CreateTransformationRequest{
		EraSlug:   era.Slug,
		PhotoPath: "uploads/a.jpg",
	})
	assert.ErrorIs(t, err, ErrEraNotFound)
}

func TestCreateAnonymousBlocked(t *testing.T) {
	svc, repo := newTransformFixture(&fakeGate{state: &model.GateState{
		FingerprintHash: "h1",
		IsBlocked:       true,
	}})
	readings := gateReadings()

	_, err := svc.Create(context.Background(), CreateTransformationRequest{
		Readings:  &readings,
		EraSlug:   "swinging-sixties",
		PhotoPath: "uploads/a.jpg",
	})
	assert.ErrorIs(t, err, ErrDeviceBlocked)
	assert.Empty(t, repo.created)
}

func TestCreateAnonymousLimitReached(t *testing.T) {
	svc, repo := newTransformFixture(&fakeGate{state: &model.GateState{
		FingerprintHash:      "h1",
		HasUsedFreeTransform: true,
		TransformationCount:  1,
	}})
	readings := gateReadings()

	_, err := svc.Create(context.Background(), CreateTransformationRequest{
		Readings:  &readings,
		EraSlug:   "swinging-sixties",
		PhotoPath: "uploads/a.jpg",
	})
	assert.ErrorIs(t, err, ErrUsageLimitReached)
	assert.Empty(t, repo.created)
}

func TestCreateAnonymousSuccess(t *testing.T) {
	svc, repo := newTransformFixture(&fakeGate{state: &model.GateState{
		FingerprintHash: "h1",
		MatchedVia:      model.MatchedNew,
	}})
	readings := gateReadings()

	created, err := svc.Create(context.Background(), CreateTransformationRequest{
		Readings:  &readings,
		EraSlug:   "swinging-sixties",
		PhotoPath: "uploads/a.jpg",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.NotEmpty(t, created.TransformationID)
	assert.Nil(t, created.UserID)
	require.NotNil(t, created.FingerprintHash)
	assert.Equal(t, "h1", *created.FingerprintHash)
	assert.Equal(t, model.TransformationPending, created.Status)
	assert.Contains(t, created.Prompt, "Swinging Sixties")
	assert.Contains(t, created.Prompt, "1960")
}

func TestCreateAnonymousWithoutReadings(t *testing.T) {
	svc, _ := newTransformFixture(&fakeGate{})

	_, err := svc.Create(context.Background(), CreateTransformationRequest{
		EraSlug:   "swinging-sixties",
		PhotoPath: "uploads/a.jpg",
	})
	assert.Error(t, err)
}

func TestCreateAuthenticatedBypassesGate(t *testing.T) {
	// A gate that would reject everything must never be consulted for a
	// signed-in user.
	svc, repo := newTransformFixture(&fakeGate{err: errors.New("gate should not be called")})
	userID := "user-42"

	created, err := svc.Create(context.Background(), CreateTransformationRequest{
		UserID:    &userID,
		EraSlug:   "swinging-sixties",
		PhotoPath: "uploads/a.jpg",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Nil(t, created.FingerprintHash)
	require.NotNil(t, created.UserID)
	assert.Equal(t, userID, *created.UserID)
}

func TestListForUser(t *testing.T) {
	svc, repo := newTransformFixture(&fakeGate{})
	userID := "user-42"
	other := "user-7"
	repo.created = []*model.Transformation{
		{TransformationID: "t1", UserID: &userID},
		{TransformationID: "t2", UserID: &other},
		{TransformationID: "t3", UserID: &userID},
	}

	out, err := svc.ListForUser(context.Background(), userID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
