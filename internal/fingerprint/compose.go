package fingerprint

import (
	"strconv"
	"strings"
)

// masterSeparator joins the signal values hashed into the master hash.
// The separator, the field order in Compose, and the rendering of absent
// optional values are frozen: changing any of them re-keys every stored
// fingerprint and orphans existing quota records.
const masterSeparator = "::"

// absentValue renders a nullable signal the browser did not expose, so that
// absence itself stays a stable part of the identity.
const absentValue = "unknown"

// Data is one composed device fingerprint. The master FingerprintHash is a
// pure function of the remaining fields; it is recomputed from a full signal
// set every time and never partially updated.
type Data struct {
	FingerprintHash string
	CanvasHash      string
	WebGLHash       string
	AudioHash       string
	ScreenHash      string
	Timezone        string
	Language        string
	Platform        string
	DeviceMemory    *int
	CPUCores        *int
}

// Compose runs every signal collector over the raw readings and assembles
// the fingerprint. The master hash covers, in fixed order: canvas, webgl,
// audio and screen hashes, timezone, platform, device memory, cpu cores.
// Language is stored but does not participate in the master hash.
func Compose(r Readings) Data {
	d := Data{
		CanvasHash:   CanvasSignal(r.Canvas),
		WebGLHash:    WebGLSignal(r.WebGL),
		AudioHash:    AudioSignal(r.Audio),
		ScreenHash:   ScreenSignal(r.Screen),
		Timezone:     r.Timezone,
		Language:     r.Language,
		Platform:     r.Platform,
		DeviceMemory: r.DeviceMemory,
		CPUCores:     r.CPUCores,
	}
	parts := []string{
		d.CanvasHash,
		d.WebGLHash,
		d.AudioHash,
		d.ScreenHash,
		d.Timezone,
		d.Platform,
		optionalInt(d.DeviceMemory),
		optionalInt(d.CPUCores),
	}
	d.FingerprintHash = Hash(strings.Join(parts, masterSeparator))
	return d
}

func optionalInt(v *int) string {
	if v == nil {
		return absentValue
	}
	return strconv.Itoa(*v)
}
