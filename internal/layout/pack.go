// Package layout positions ranked word counts as non-overlapping circles
// for a packed bubble chart.
package layout

import (
	"math"

	"github.com/hyperifyio/wordbubble/internal/analyze"
)

// MaxRadius is the radius assigned to the highest-count bubble. Chart
// clients scale the whole layout to their viewport, so the unit here is
// arbitrary.
const MaxRadius = 100.0

// MinRadius keeps low-count bubbles clickable.
const MinRadius = 8.0

// gap is the spacing kept between circle edges so strokes never touch.
const gap = 1.0

// Bubble is one plotting-ready circle. X and Y are center coordinates
// relative to the layout origin; R is the radius.
type Bubble struct {
	Word  string  `json:"word"`
	Count int     `json:"count"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
}

// Pack lays out the ranked entries as non-overlapping circles. Radii are
// proportional to the square root of the count, so circle area encodes
// magnitude and a runaway top word cannot swamp the chart. Output order
// matches input order; equal counts get equal radii and a larger count
// never gets a smaller radius. Empty input yields an empty layout.
func Pack(entries []analyze.WordCount) []Bubble {
	if len(entries) == 0 {
		return []Bubble{}
	}

	maxCount := entries[0].Count
	for _, e := range entries {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	if maxCount <= 0 {
		maxCount = 1
	}

	bubbles := make([]Bubble, 0, len(entries))
	for _, e := range entries {
		r := radiusFor(e.Count, maxCount)
		x, y := place(bubbles, r)
		bubbles = append(bubbles, Bubble{Word: e.Word, Count: e.Count, X: x, Y: y, R: r})
	}
	return bubbles
}

// radiusFor maps a count to a radius via sqrt scaling against the largest
// count in the batch, clamped to MinRadius.
func radiusFor(count, maxCount int) float64 {
	if count < 0 {
		count = 0
	}
	r := MaxRadius * math.Sqrt(float64(count)/float64(maxCount))
	if r < MinRadius {
		r = MinRadius
	}
	return r
}

// place finds the first collision-free center for a circle of radius r by
// walking an Archimedean spiral out from the origin. Deterministic: the
// same input always produces the same layout.
func place(placed []Bubble, r float64) (float64, float64) {
	if len(placed) == 0 {
		return 0, 0
	}
	// Arm spacing scales with the incoming radius so small circles can
	// tuck into gaps between large ones.
	spacing := r / 4
	if spacing < 1 {
		spacing = 1
	}
	b := spacing / (2 * math.Pi)
	const dTheta = math.Pi / 32
	for theta := dTheta; ; theta += dTheta {
		dist := b * theta
		x := dist * math.Cos(theta)
		y := dist * math.Sin(theta)
		if !collides(placed, x, y, r) {
			return x, y
		}
	}
}

func collides(placed []Bubble, x, y, r float64) bool {
	for _, b := range placed {
		dx := x - b.X
		dy := y - b.Y
		min := r + b.R + gap
		if dx*dx+dy*dy < min*min {
			return true
		}
	}
	return false
}
