package fingerprint

import "math"

// FieldSet is the fixed comparison set used for similarity scoring. A nil
// entry marks a field absent from that record (legacy rows predate some
// columns); absent fields are skipped rather than counted as mismatches.
type FieldSet struct {
	CanvasHash   *string
	WebGLHash    *string
	AudioHash    *string
	ScreenHash   *string
	Timezone     *string
	Platform     *string
	DeviceMemory *int
	CPUCores     *int
}

// Fields returns the comparable field-set of a composed fingerprint.
// Sentinel signal values participate like any other value: two browsers
// that both fail canvas collection the same way do look more alike.
func (d Data) Fields() FieldSet {
	return FieldSet{
		CanvasHash:   strField(d.CanvasHash),
		WebGLHash:    strField(d.WebGLHash),
		AudioHash:    strField(d.AudioHash),
		ScreenHash:   strField(d.ScreenHash),
		Timezone:     strField(d.Timezone),
		Platform:     strField(d.Platform),
		DeviceMemory: d.DeviceMemory,
		CPUCores:     d.CPUCores,
	}
}

// Score computes the unweighted percentage of matching fields across the
// comparison set, counting only fields present in both inputs. Returns a
// value in [0, 100], rounded to the nearest integer, and 0 when no fields
// are comparable. Symmetric in its arguments.
//
// This is a deliberate equal-weight heuristic; the adoption threshold lives
// in configuration, not here.
func Score(a, b FieldSet) int {
	var matches, total int

	strPairs := [][2]*string{
		{a.CanvasHash, b.CanvasHash},
		{a.WebGLHash, b.WebGLHash},
		{a.AudioHash, b.AudioHash},
		{a.ScreenHash, b.ScreenHash},
		{a.Timezone, b.Timezone},
		{a.Platform, b.Platform},
	}
	for _, p := range strPairs {
		if p[0] == nil || p[1] == nil {
			continue
		}
		total++
		if *p[0] == *p[1] {
			matches++
		}
	}

	intPairs := [][2]*int{
		{a.DeviceMemory, b.DeviceMemory},
		{a.CPUCores, b.CPUCores},
	}
	for _, p := range intPairs {
		if p[0] == nil || p[1] == nil {
			continue
		}
		total++
		if *p[0] == *p[1] {
			matches++
		}
	}

	if total == 0 {
		return 0
	}
	return int(math.Round(float64(matches) / float64(total) * 100))
}

func strField(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
