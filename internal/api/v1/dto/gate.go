package dto

import "rewind/internal/fingerprint"

// CanvasReadingDTO is the client's serialized canvas render, or the reason
// it could not be collected.
type CanvasReadingDTO struct {
	Supported bool   `json:"supported"`
	Error     string `json:"error"`
	DataURL   string `json:"data_url"`
}

type WebGLReadingDTO struct {
	Supported           bool   `json:"supported"`
	Error               string `json:"error"`
	Vendor              string `json:"vendor"`
	Renderer            string `json:"renderer"`
	Version             string `json:"version"`
	ShadingLanguage     string `json:"shading_language"`
	MaxTextureSize      int    `json:"max_texture_size"`
	MaxRenderbufferSize int    `json:"max_renderbuffer_size"`
}

type AudioReadingDTO struct {
	Supported bool      `json:"supported"`
	Error     string    `json:"error"`
	Samples   []float64 `json:"samples"`
}

type ScreenReadingDTO struct {
	Width            int     `json:"width" validate:"gte=0"`
	Height           int     `json:"height" validate:"gte=0"`
	ColorDepth       int     `json:"color_depth" validate:"gte=0"`
	PixelDepth       int     `json:"pixel_depth" validate:"gte=0"`
	DevicePixelRatio float64 `json:"device_pixel_ratio" validate:"gte=0"`
	AvailWidth       int     `json:"avail_width" validate:"gte=0"`
	AvailHeight      int     `json:"avail_height" validate:"gte=0"`
}

// SignalReadingsDTO is the raw signal payload a browser submits for
// fingerprint resolution. Missing canvas/webgl/audio blocks mean the
// browser API was unavailable.
type SignalReadingsDTO struct {
	Canvas       *CanvasReadingDTO `json:"canvas"`
	WebGL        *WebGLReadingDTO  `json:"webgl"`
	Audio        *AudioReadingDTO  `json:"audio"`
	Screen       ScreenReadingDTO  `json:"screen"`
	Timezone     string            `json:"timezone" validate:"required"`
	Language     string            `json:"language" validate:"required"`
	Platform     string            `json:"platform" validate:"required"`
	DeviceMemory *int              `json:"device_memory" validate:"omitempty,gte=0"`
	CPUCores     *int              `json:"cpu_cores" validate:"omitempty,gte=0"`
}

// Readings maps the DTO onto the fingerprint domain payload.
func (d SignalReadingsDTO) Readings() fingerprint.Readings {
	r := fingerprint.Readings{
		Screen: fingerprint.ScreenReading{
			Width:            d.Screen.Width,
			Height:           d.Screen.Height,
			ColorDepth:       d.Screen.ColorDepth,
			PixelDepth:       d.Screen.PixelDepth,
			DevicePixelRatio: d.Screen.DevicePixelRatio,
			AvailWidth:       d.Screen.AvailWidth,
			AvailHeight:      d.Screen.AvailHeight,
		},
		Timezone:     d.Timezone,
		Language:     d.Language,
		Platform:     d.Platform,
		DeviceMemory: d.DeviceMemory,
		CPUCores:     d.CPUCores,
	}
	if d.Canvas != nil {
		r.Canvas = &fingerprint.CanvasReading{
			Supported: d.Canvas.Supported,
			Error:     d.Canvas.Error,
			DataURL:   d.Canvas.DataURL,
		}
	}
	if d.WebGL != nil {
		r.WebGL = &fingerprint.WebGLReading{
			Supported:           d.WebGL.Supported,
			Error:               d.WebGL.Error,
			Vendor:              d.WebGL.Vendor,
			Renderer:            d.WebGL.Renderer,
			Version:             d.WebGL.Version,
			ShadingLanguage:     d.WebGL.ShadingLanguage,
			MaxTextureSize:      d.WebGL.MaxTextureSize,
			MaxRenderbufferSize: d.WebGL.MaxRenderbufferSize,
		}
	}
	if d.Audio != nil {
		r.Audio = &fingerprint.AudioReading{
			Supported: d.Audio.Supported,
			Error:     d.Audio.Error,
			Samples:   d.Audio.Samples,
		}
	}
	return r
}

// GateStateResponseDTO is returned by the gate endpoints.
type GateStateResponseDTO struct {
	FingerprintHash      string `json:"fingerprint_hash"`
	IsBlocked            bool   `json:"is_blocked"`
	HasUsedFreeTransform bool   `json:"has_used_free_transform"`
	TransformationCount  int    `json:"transformation_count"`
	MatchedVia           string `json:"matched_via"`
}
