package almanac

import "math"

// SunLongitude calculates the approximate ecliptic longitude of the Sun
// for a fractional day count since J2000, via the low-accuracy solar
// position algorithm (mean longitude plus equation of center). Accurate
// to within about one degree, which is sufficient for sign and gate
// determination on most days.
func SunLongitude(daysSinceJ2000 float64) float64 {
	d := daysSinceJ2000

	// Mean longitude of the Sun (degrees)
	l0 := math.Mod(280.46646+0.9856474*d, 360)

	// Mean anomaly of the Sun (degrees)
	m := math.Mod(357.52911+0.9856003*d, 360)
	mRad := m * math.Pi / 180

	// Equation of center (degrees)
	c := 1.9146*math.Sin(mRad) +
		0.0200*math.Sin(2*mRad) +
		0.0003*math.Sin(3*mRad)

	return NormalizeDegrees(l0 + c)
}

// HouseThemes keyed by house number 1-12
var HouseThemes = map[int]string{
	1:  "Self & Identity",
	2:  "Resources & Values",
	3:  "Communication & Learning",
	4:  "Home & Foundation",
	5:  "Creativity & Joy",
	6:  "Health & Service",
	7:  "Partnerships & Relationships",
	8:  "Transformation & Shared Resources",
	9:  "Expansion & Philosophy",
	10: "Career & Public Image",
	11: "Community & Aspirations",
	12: "Spirituality & Release",
}

// HouseFocus derives the activated solar house from the transiting
// Sun's arc off the natal Sun. Each house spans 30 degrees of solar arc.
func HouseFocus(natalLongitude, transitLongitude float64) int {
	arc := NormalizeDegrees(transitLongitude - natalLongitude)
	house := int(arc/30) + 1
	if house > 12 {
		house = 12
	}
	return house
}
