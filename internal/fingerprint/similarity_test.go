package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func fullFieldSet() FieldSet {
	return FieldSet{
		CanvasHash:   strPtr("c1"),
		WebGLHash:    strPtr("w1"),
		AudioHash:    strPtr("a1"),
		ScreenHash:   strPtr("s1"),
		Timezone:     strPtr("Europe/Berlin"),
		Platform:     strPtr("MacIntel"),
		DeviceMemory: intPtr(8),
		CPUCores:     intPtr(8),
	}
}

func TestScoreSelfIsHundred(t *testing.T) {
	fs := fullFieldSet()
	assert.Equal(t, 100, Score(fs, fs))
}

func TestScoreSymmetric(t *testing.T) {
	a := fullFieldSet()
	b := fullFieldSet()
	b.AudioHash = strPtr("a2")
	b.ScreenHash = nil
	b.DeviceMemory = intPtr(16)
	assert.Equal(t, Score(a, b), Score(b, a))
}

func TestScoreBounds(t *testing.T) {
	cases := []struct {
		name string
		a, b FieldSet
	}{
		{"identical", fullFieldSet(), fullFieldSet()},
		{"disjoint presence", FieldSet{CanvasHash: strPtr("c")}, FieldSet{WebGLHash: strPtr("w")}},
		{"all different", fullFieldSet(), FieldSet{
			CanvasHash: strPtr("x"), WebGLHash: strPtr("x"), AudioHash: strPtr("x"),
			ScreenHash: strPtr("x"), Timezone: strPtr("x"), Platform: strPtr("x"),
			DeviceMemory: intPtr(1), CPUCores: intPtr(2),
		}},
	}
	for _, tc := range cases {
		s := Score(tc.a, tc.b)
		assert.GreaterOrEqual(t, s, 0, tc.name)
		assert.LessOrEqual(t, s, 100, tc.name)
	}
}

func TestScoreNoComparableFields(t *testing.T) {
	assert.Equal(t, 0, Score(FieldSet{}, fullFieldSet()))
	assert.Equal(t, 0, Score(FieldSet{}, FieldSet{}))
	assert.Equal(t, 0, Score(FieldSet{CanvasHash: strPtr("c")}, FieldSet{WebGLHash: strPtr("w")}))
}

func TestScoreSkipsAbsentFields(t *testing.T) {
	// Legacy row missing device_memory and cpu_cores: score over the
	// remaining six fields only.
	legacy := fullFieldSet()
	legacy.DeviceMemory = nil
	legacy.CPUCores = nil
	legacy.AudioHash = strPtr("different")

	// 5 of 6 comparable fields match.
	assert.Equal(t, 83, Score(fullFieldSet(), legacy))
}

func TestScoreIncognitoScenario(t *testing.T) {
	// Same hardware (canvas, webgl), different browsing context (audio,
	// screen differ), same ambient values: 6 of 8 match.
	fresh := fullFieldSet()
	stored := fullFieldSet()
	stored.AudioHash = strPtr("a-other")
	stored.ScreenHash = strPtr("s-other")

	assert.Equal(t, 75, Score(fresh, stored))
}

func TestScoreRounding(t *testing.T) {
	// 1 of 3 comparable fields: 33.33 rounds to 33; 2 of 3: 66.67 to 67.
	a := FieldSet{CanvasHash: strPtr("c"), WebGLHash: strPtr("w"), AudioHash: strPtr("a")}
	oneOfThree := FieldSet{CanvasHash: strPtr("c"), WebGLHash: strPtr("x"), AudioHash: strPtr("y")}
	twoOfThree := FieldSet{CanvasHash: strPtr("c"), WebGLHash: strPtr("w"), AudioHash: strPtr("y")}
	assert.Equal(t, 33, Score(a, oneOfThree))
	assert.Equal(t, 67, Score(a, twoOfThree))
}

func TestDataFieldsTreatsEmptyAsAbsent(t *testing.T) {
	d := Data{CanvasHash: "c1", Timezone: "Europe/Berlin"}
	fs := d.Fields()
	assert.NotNil(t, fs.CanvasHash)
	assert.Nil(t, fs.WebGLHash)
	assert.Nil(t, fs.Platform)
	assert.NotNil(t, fs.Timezone)
}
