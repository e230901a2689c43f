package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasSignalSentinels(t *testing.T) {
	assert.Equal(t, SentinelNoCanvas, CanvasSignal(nil))
	assert.Equal(t, SentinelNoCanvas, CanvasSignal(&CanvasReading{Supported: false}))
	assert.Equal(t, SentinelCanvasError, CanvasSignal(&CanvasReading{Supported: true, Error: "tainted"}))
	assert.Equal(t, SentinelCanvasError, CanvasSignal(&CanvasReading{Supported: true, DataURL: ""}))
}

func TestCanvasSignalHashesPayload(t *testing.T) {
	a := CanvasSignal(&CanvasReading{Supported: true, DataURL: "data:image/png;base64,AAAA"})
	b := CanvasSignal(&CanvasReading{Supported: true, DataURL: "data:image/png;base64,AAAB"})
	assert.NotEqual(t, SentinelNoCanvas, a)
	assert.NotEqual(t, SentinelCanvasError, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, CanvasSignal(&CanvasReading{Supported: true, DataURL: "data:image/png;base64,AAAA"}))
}

func TestWebGLSignalSentinels(t *testing.T) {
	assert.Equal(t, SentinelNoWebGL, WebGLSignal(nil))
	assert.Equal(t, SentinelNoWebGL, WebGLSignal(&WebGLReading{Supported: false}))
	assert.Equal(t, SentinelWebGLError, WebGLSignal(&WebGLReading{Supported: true, Error: "context lost"}))
}

func TestWebGLSignalCoversCapabilityLimits(t *testing.T) {
	base := WebGLReading{
		Supported:           true,
		Vendor:              "NVIDIA Corporation",
		Renderer:            "GeForce RTX 3060",
		Version:             "WebGL 2.0",
		ShadingLanguage:     "WebGL GLSL ES 3.00",
		MaxTextureSize:      16384,
		MaxRenderbufferSize: 16384,
	}
	other := base
	other.MaxTextureSize = 8192
	assert.NotEqual(t, WebGLSignal(&base), WebGLSignal(&other))
}

func TestAudioSignalSentinels(t *testing.T) {
	assert.Equal(t, SentinelNoAudio, AudioSignal(nil))
	assert.Equal(t, SentinelNoAudio, AudioSignal(&AudioReading{Supported: false}))
	assert.Equal(t, SentinelAudioError, AudioSignal(&AudioReading{Supported: true, Error: "suspended"}))
	assert.Equal(t, SentinelAudioError, AudioSignal(&AudioReading{Supported: true, Samples: nil}))
}

func TestAudioSignalUsesFirstThirtySamples(t *testing.T) {
	samples := make([]float64, 64)
	for i := range samples {
		samples[i] = float64(i) * 0.5
	}
	full := AudioSignal(&AudioReading{Supported: true, Samples: samples})

	// Mutating a bin past the 30th must not change the signal.
	beyond := make([]float64, 64)
	copy(beyond, samples)
	beyond[45] = 999
	assert.Equal(t, full, AudioSignal(&AudioReading{Supported: true, Samples: beyond}))

	// Mutating a bin inside the window must.
	inside := make([]float64, 64)
	copy(inside, samples)
	inside[10] = 999
	assert.NotEqual(t, full, AudioSignal(&AudioReading{Supported: true, Samples: inside}))
}

func TestAudioSignalShortSample(t *testing.T) {
	short := AudioSignal(&AudioReading{Supported: true, Samples: []float64{1, 2, 3}})
	assert.NotEqual(t, SentinelAudioError, short)
	assert.Equal(t, short, AudioSignal(&AudioReading{Supported: true, Samples: []float64{1, 2, 3}}))
}

func TestScreenSignalNoFailureMode(t *testing.T) {
	var zero ScreenReading
	out := ScreenSignal(zero)
	assert.NotEmpty(t, out)

	a := ScreenSignal(ScreenReading{Width: 1920, Height: 1080, ColorDepth: 24, PixelDepth: 24, DevicePixelRatio: 1, AvailWidth: 1920, AvailHeight: 1040})
	b := ScreenSignal(ScreenReading{Width: 1920, Height: 1080, ColorDepth: 24, PixelDepth: 24, DevicePixelRatio: 2, AvailWidth: 1920, AvailHeight: 1040})
	assert.NotEqual(t, a, b)
}
