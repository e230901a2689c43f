package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rewind/internal/api/v1/dto"
	"rewind/internal/fingerprint"
	"rewind/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateService struct {
	state *model.GateState
	err   error
}

func (s *stubGateService) Resolve(ctx context.Context, readings fingerprint.Readings) (*model.GateState, error) {
	return s.state, s.err
}

func (s *stubGateService) RecordTransformation(ctx context.Context, readings fingerprint.Readings) (*model.GateState, error) {
	return s.state, s.err
}

func newGateMux(svc *stubGateService) *http.ServeMux {
	mux := http.NewServeMux()
	NewGateHandler(svc, validator.New(), zerolog.Nop()).RegisterRoutes(mux)
	return mux
}

func signalsBody(t *testing.T) string {
	t.Helper()
	payload := dto.SignalReadingsDTO{
		Canvas: &dto.CanvasReadingDTO{Supported: true, DataURL: "data:image/png;base64,AAAA"},
		WebGL: &dto.WebGLReadingDTO{
			Supported: true, Vendor: "Intel Inc.", Renderer: "Intel Iris",
			Version: "WebGL 2.0", ShadingLanguage: "WebGL GLSL ES 3.00",
			MaxTextureSize: 16384, MaxRenderbufferSize: 16384,
		},
		Audio: &dto.AudioReadingDTO{Supported: true, Samples: []float64{0.1, 0.2}},
		Screen: dto.ScreenReadingDTO{
			Width: 1920, Height: 1080, ColorDepth: 24, PixelDepth: 24,
			DevicePixelRatio: 1, AvailWidth: 1920, AvailHeight: 1040,
		},
		Timezone: "Europe/Berlin",
		Language: "de-DE",
		Platform: "MacIntel",
	}
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(b)
}

func TestGateResolveOK(t *testing.T) {
	mux := newGateMux(&stubGateService{state: &model.GateState{
		FingerprintHash:      "1a2b3c",
		HasUsedFreeTransform: true,
		TransformationCount:  1,
		MatchedVia:           model.MatchedExact,
	}})

	req := httptest.NewRequest(http.MethodPost, "/gate/resolve", strings.NewReader(signalsBody(t)))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp dto.GateStateResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1a2b3c", resp.FingerprintHash)
	assert.True(t, resp.HasUsedFreeTransform)
	assert.Equal(t, 1, resp.TransformationCount)
	assert.Equal(t, model.MatchedExact, resp.MatchedVia)
}

func TestGateResolveInvalidJSON(t *testing.T) {
	mux := newGateMux(&stubGateService{state: &model.GateState{}})

	req := httptest.NewRequest(http.MethodPost, "/gate/resolve", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGateResolveValidationFailure(t *testing.T) {
	mux := newGateMux(&stubGateService{state: &model.GateState{}})

	// Missing timezone/language/platform.
	req := httptest.NewRequest(http.MethodPost, "/gate/resolve", strings.NewReader(`{"screen":{}}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}

func TestGateResolveMethodNotAllowed(t *testing.T) {
	mux := newGateMux(&stubGateService{state: &model.GateState{}})

	req := httptest.NewRequest(http.MethodGet, "/gate/resolve", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGateResolveServiceUnavailable(t *testing.T) {
	mux := newGateMux(&stubGateService{err: errors.New("store down")})

	req := httptest.NewRequest(http.MethodPost, "/gate/resolve", strings.NewReader(signalsBody(t)))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGateRecordTransformationAccepted(t *testing.T) {
	mux := newGateMux(&stubGateService{state: &model.GateState{
		FingerprintHash:      "1a2b3c",
		HasUsedFreeTransform: true,
		TransformationCount:  1,
		MatchedVia:           model.MatchedNew,
	}})

	req := httptest.NewRequest(http.MethodPost, "/gate/transformations", strings.NewReader(signalsBody(t)))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp dto.GateStateResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TransformationCount)
}
