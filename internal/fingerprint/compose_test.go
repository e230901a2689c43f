package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func sampleReadings() Readings {
	return Readings{
		Canvas: &CanvasReading{Supported: true, DataURL: "data:image/png;base64,AAAA"},
		WebGL: &WebGLReading{
			Supported: true, Vendor: "Intel Inc.", Renderer: "Intel Iris",
			Version: "WebGL 2.0", ShadingLanguage: "WebGL GLSL ES 3.00",
			MaxTextureSize: 16384, MaxRenderbufferSize: 16384,
		},
		Audio: &AudioReading{Supported: true, Samples: []float64{0.1, 0.2, 0.3, 0.4}},
		Screen: ScreenReading{
			Width: 1920, Height: 1080, ColorDepth: 24, PixelDepth: 24,
			DevicePixelRatio: 1, AvailWidth: 1920, AvailHeight: 1040,
		},
		Timezone:     "Europe/Berlin",
		Language:     "de-DE",
		Platform:     "MacIntel",
		DeviceMemory: intPtr(8),
		CPUCores:     intPtr(8),
	}
}

func TestComposeDeterministic(t *testing.T) {
	a := Compose(sampleReadings())
	b := Compose(sampleReadings())
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a.FingerprintHash)
}

func TestComposePopulatesAllSignals(t *testing.T) {
	d := Compose(sampleReadings())
	assert.NotEmpty(t, d.CanvasHash)
	assert.NotEmpty(t, d.WebGLHash)
	assert.NotEmpty(t, d.AudioHash)
	assert.NotEmpty(t, d.ScreenHash)
	assert.Equal(t, "Europe/Berlin", d.Timezone)
	assert.Equal(t, "de-DE", d.Language)
	assert.Equal(t, "MacIntel", d.Platform)
	require.NotNil(t, d.DeviceMemory)
	assert.Equal(t, 8, *d.DeviceMemory)
}

func TestComposeSensitivity(t *testing.T) {
	base := Compose(sampleReadings()).FingerprintHash

	mutations := map[string]func(*Readings){
		"canvas":        func(r *Readings) { r.Canvas.DataURL = "data:image/png;base64,BBBB" },
		"webgl":         func(r *Readings) { r.WebGL.Renderer = "GeForce RTX 3060" },
		"audio":         func(r *Readings) { r.Audio.Samples = []float64{9, 9, 9} },
		"screen width":  func(r *Readings) { r.Screen.Width = 2560 },
		"timezone":      func(r *Readings) { r.Timezone = "America/New_York" },
		"platform":      func(r *Readings) { r.Platform = "Win32" },
		"device memory": func(r *Readings) { r.DeviceMemory = intPtr(16) },
		"cpu cores":     func(r *Readings) { r.CPUCores = nil },
	}
	for name, mutate := range mutations {
		r := sampleReadings()
		mutate(&r)
		assert.NotEqual(t, base, Compose(r).FingerprintHash, "mutation %q did not change master hash", name)
	}
}

func TestComposeLanguageNotInMasterHash(t *testing.T) {
	r := sampleReadings()
	r.Language = "fr-FR"
	assert.Equal(t, Compose(sampleReadings()).FingerprintHash, Compose(r).FingerprintHash)
}

func TestComposeSentinelsFlowIntoMasterHash(t *testing.T) {
	r := sampleReadings()
	r.Canvas = nil
	r.WebGL = nil
	r.Audio = nil
	d := Compose(r)
	assert.Equal(t, SentinelNoCanvas, d.CanvasHash)
	assert.Equal(t, SentinelNoWebGL, d.WebGLHash)
	assert.Equal(t, SentinelNoAudio, d.AudioHash)
	assert.NotEmpty(t, d.FingerprintHash)
	assert.NotEqual(t, Compose(sampleReadings()).FingerprintHash, d.FingerprintHash)
}
