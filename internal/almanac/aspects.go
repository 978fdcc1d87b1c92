package almanac

import "fmt"

// Aspect is one major planetary aspect definition
type Aspect struct {
	Name    string
	Angle   float64
	Orb     float64
	Symbol  string
	Quality string
}

// MajorAspects in tightening-orb priority order; the first match wins
var MajorAspects = []Aspect{
	{Name: "Conjunction", Angle: 0, Orb: 8, Symbol: "☌", Quality: "intensifying"},
	{Name: "Sextile", Angle: 60, Orb: 6, Symbol: "⚹", Quality: "harmonious opportunity"},
	{Name: "Square", Angle: 90, Orb: 7, Symbol: "□", Quality: "challenging tension"},
	{Name: "Trine", Angle: 120, Orb: 7, Symbol: "△", Quality: "flowing harmony"},
	{Name: "Opposition", Angle: 180, Orb: 8, Symbol: "☍", Quality: "polarizing awareness"},
}

// MatchAspect finds the first major aspect whose orb covers the given
// angular separation. Returns nil when no aspect applies.
func MatchAspect(separation float64) *Aspect {
	for i := range MajorAspects {
		a := &MajorAspects[i]
		diff := separation - a.Angle
		if diff < 0 {
			diff = -diff
		}
		if diff <= a.Orb {
			return a
		}
	}
	return nil
}

// FormatAspect renders an aspect between two bodies in the canonical
// "A symbol B (Name, quality)" form
func FormatAspect(bodyA, bodyB string, a *Aspect) string {
	return fmt.Sprintf("%s %s %s (%s, %s)", bodyA, a.Symbol, bodyB, a.Name, a.Quality)
}
