package fingerprint

import (
	"strconv"
	"strings"
)

// Sentinels substituted when a signal cannot be collected. "no-*" means the
// browser API was unavailable, "*-error" means collection was attempted and
// failed (e.g. a tainted canvas). Collectors never return an error.
const (
	SentinelNoCanvas    = "no-canvas"
	SentinelCanvasError = "canvas-error"
	SentinelNoWebGL     = "no-webgl"
	SentinelWebGLError  = "webgl-error"
	SentinelNoAudio     = "no-audio"
	SentinelAudioError  = "audio-error"
)

// audioSampleCount is the number of leading frequency-bin values hashed.
const audioSampleCount = 30

// CanvasReading is the client's serialized off-screen canvas render.
type CanvasReading struct {
	Supported bool   `json:"supported"`
	Error     string `json:"error,omitempty"`
	DataURL   string `json:"data_url,omitempty"`
}

// WebGLReading carries the GPU identity strings and capability limits read
// from a WebGL context (renderer/vendor via the debug-info extension when
// the browser exposes it).
type WebGLReading struct {
	Supported           bool   `json:"supported"`
	Error               string `json:"error,omitempty"`
	Vendor              string `json:"vendor,omitempty"`
	Renderer            string `json:"renderer,omitempty"`
	Version             string `json:"version,omitempty"`
	ShadingLanguage     string `json:"shading_language,omitempty"`
	MaxTextureSize      int    `json:"max_texture_size,omitempty"`
	MaxRenderbufferSize int    `json:"max_renderbuffer_size,omitempty"`
}

// AudioReading is the frequency-bin sample taken from a silent oscillator
// routed through an analyser node.
type AudioReading struct {
	Supported bool      `json:"supported"`
	Error     string    `json:"error,omitempty"`
	Samples   []float64 `json:"samples,omitempty"`
}

// ScreenReading has no failure mode; the values are always readable.
type ScreenReading struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	ColorDepth       int     `json:"color_depth"`
	PixelDepth       int     `json:"pixel_depth"`
	DevicePixelRatio float64 `json:"device_pixel_ratio"`
	AvailWidth       int     `json:"avail_width"`
	AvailHeight      int     `json:"avail_height"`
}

// Readings is one browser's raw signal payload, collected client-side and
// reduced to signal hashes here.
type Readings struct {
	Canvas       *CanvasReading `json:"canvas"`
	WebGL        *WebGLReading  `json:"webgl"`
	Audio        *AudioReading  `json:"audio"`
	Screen       ScreenReading  `json:"screen"`
	Timezone     string         `json:"timezone"`
	Language     string         `json:"language"`
	Platform     string         `json:"platform"`
	DeviceMemory *int           `json:"device_memory"`
	CPUCores     *int           `json:"cpu_cores"`
}

// CanvasSignal hashes the serialized canvas render.
func CanvasSignal(r *CanvasReading) string {
	if r == nil || !r.Supported {
		return SentinelNoCanvas
	}
	if r.Error != "" || r.DataURL == "" {
		return SentinelCanvasError
	}
	return Hash(r.DataURL)
}

// WebGLSignal hashes the joined GPU identity strings and capability limits.
func WebGLSignal(r *WebGLReading) string {
	if r == nil || !r.Supported {
		return SentinelNoWebGL
	}
	if r.Error != "" {
		return SentinelWebGLError
	}
	parts := []string{
		r.Vendor,
		r.Renderer,
		r.Version,
		r.ShadingLanguage,
		strconv.Itoa(r.MaxTextureSize),
		strconv.Itoa(r.MaxRenderbufferSize),
	}
	return Hash(strings.Join(parts, "~"))
}

// AudioSignal hashes the first 30 frequency-bin samples, comma-joined.
// An empty sample set counts as a collection failure.
func AudioSignal(r *AudioReading) string {
	if r == nil || !r.Supported {
		return SentinelNoAudio
	}
	if r.Error != "" || len(r.Samples) == 0 {
		return SentinelAudioError
	}
	samples := r.Samples
	if len(samples) > audioSampleCount {
		samples = samples[:audioSampleCount]
	}
	strs := make([]string, len(samples))
	for i, v := range samples {
		strs[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return Hash(strings.Join(strs, ","))
}

// ScreenSignal hashes the joined screen geometry values.
func ScreenSignal(r ScreenReading) string {
	parts := []string{
		strconv.Itoa(r.Width),
		strconv.Itoa(r.Height),
		strconv.Itoa(r.ColorDepth),
		strconv.Itoa(r.PixelDepth),
		strconv.FormatFloat(r.DevicePixelRatio, 'f', -1, 64),
		strconv.Itoa(r.AvailWidth),
		strconv.Itoa(r.AvailHeight),
	}
	return Hash(strings.Join(parts, "x"))
}
