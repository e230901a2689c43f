// Package prompt assembles the structured text prompt sent to the
// generative-image API for an era transformation. The builder is pure
// string assembly over the static scenario tables plus the era row; it
// performs no I/O.
package prompt

import (
	"fmt"
	"strings"
)

// facePreservation is constant across eras: the product's one hard
// requirement of the image model.
const facePreservation = "Preserve the subject's facial identity exactly: same face structure, " +
	"skin tone, eyes and distinguishing features as the reference photo. Do not beautify, " +
	"age or de-age the subject."

// Input carries the era row fields the builder needs.
type Input struct {
	EraSlug     string
	EraName     string
	StartYear   int
	EndYear     int
	Celebrities []string
}

// Build assembles the generation prompt for one transformation request.
func Build(in Input) string {
	sc := ScenarioFor(in.EraSlug)

	var b strings.Builder
	fmt.Fprintf(&b, "Transform the person in the reference photo into a scene from %s (%d-%d).\n\n",
		in.EraName, in.StartYear, in.EndYear)
	fmt.Fprintf(&b, "Setting: %s.\n", sc.Setting)
	fmt.Fprintf(&b, "Attire: %s.\n", sc.Attire)
	fmt.Fprintf(&b, "Lighting: %s.\n", sc.Lighting)
	fmt.Fprintf(&b, "Medium: %s.\n", sc.FilmStock)
	fmt.Fprintf(&b, "Art direction: %s.\n", sc.ArtDirection)
	if len(in.Celebrities) > 0 {
		fmt.Fprintf(&b, "\nPlace the subject naturally alongside likenesses of %s, "+
			"interacting as contemporaries of the era.\n", joinNames(in.Celebrities))
	}
	b.WriteString("\n" + facePreservation)
	return b.String()
}

func joinNames(names []string) string {
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
