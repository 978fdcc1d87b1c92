package contracts

// Domain identifies one alignment domain
type Domain string

const (
	DomainMoon        Domain = "moon"
	DomainNumerology  Domain = "numerology"
	DomainSolar       Domain = "solar"
	DomainHumanDesign Domain = "human_design"
	DomainIChing      Domain = "i_ching"
	DomainBiorhythm   Domain = "biorhythm"
)

// Fallback values recorded on degraded results
const (
	FallbackNoon = "noon" // birth time unknown, noon assumed
	FallbackUTC  = "utc"  // location unknown, UTC assumed
)

// ResultMeta is shared by every domain result.
// ⭐ SSOT: Degraded distinguishes "computed" from "computed with fallback";
// it is informational, never an error.
type ResultMeta struct {
	Domain    Domain   `json:"domain"`
	Degraded  bool     `json:"degraded"`
	Fallbacks []string `json:"fallbacks,omitempty"`
}

// MarkDegraded records a fallback on the result
func (m *ResultMeta) MarkDegraded(fallback string) {
	m.Degraded = true
	m.Fallbacks = append(m.Fallbacks, fallback)
}

// MoonResult holds lunar phase and sign values.
// All fractions are rounded to 4 decimal places upstream.
type MoonResult struct {
	Meta ResultMeta `json:"meta"`

	// PhaseFraction is position in the synodic cycle, [0, 1)
	PhaseFraction float64 `json:"phase_fraction"`
	PhaseName     string  `json:"phase_name"`
	// Illumination is the lit fraction of the disc, [0, 1]
	Illumination float64 `json:"illumination"`

	Longitude float64 `json:"longitude"` // ecliptic, degrees [0, 360)
	Sign      string  `json:"sign"`
	Element   string  `json:"element"`
	Modality  string  `json:"modality"`

	// Aspects between the luminaries, e.g. "Sun △ Moon (Trine, flowing harmony)"
	Aspects []string `json:"aspects,omitempty"`
}

// NumerologyResult holds the reduced numbers for the day
type NumerologyResult struct {
	Meta ResultMeta `json:"meta"`

	// LifePath ∈ {1..9, 11, 22, 33}
	LifePath       int  `json:"life_path"`
	LifePathMaster bool `json:"life_path_master"`

	PersonalYear  int `json:"personal_year"`
	PersonalMonth int `json:"personal_month"`
	PersonalDay   int `json:"personal_day"`
	UniversalDay  int `json:"universal_day"`
}

// SolarResult holds transit sun position and the solar-return house focus
type SolarResult struct {
	Meta ResultMeta `json:"meta"`

	Longitude float64 `json:"longitude"` // ecliptic, degrees [0, 360)
	Sign      string  `json:"sign"`
	Element   string  `json:"element"`
	Modality  string  `json:"modality"`

	// HouseFocus is 1-12, from the transiting Sun's arc off the natal Sun
	HouseFocus int    `json:"house_focus"`
	HouseTheme string `json:"house_theme"`

	// DaysToSolarReturn counts days until the Sun next reaches its natal
	// longitude (0 on the solar return itself)
	DaysToSolarReturn int `json:"days_to_solar_return"`
}

// HumanDesignResult holds gate activations under the simplified
// single-luminary rule set: transit Sun gate, its Earth opposition,
// and the natal (design) Sun gate.
type HumanDesignResult struct {
	Meta ResultMeta `json:"meta"`

	SunGate      int `json:"sun_gate"` // 1-64
	SunLine      int `json:"sun_line"` // 1-6
	EarthGate    int `json:"earth_gate"`
	EarthLine    int `json:"earth_line"`
	NatalSunGate int `json:"natal_sun_gate"`
	NatalSunLine int `json:"natal_sun_line"`
}

// IChingResult holds the hexagram selection for the day.
// The 64-gate wheel doubles as the hexagram wheel, so the daily hexagram
// is the transit Sun gate and the personal hexagram is the natal Sun gate.
type IChingResult struct {
	Meta ResultMeta `json:"meta"`

	Hexagram     int    `json:"hexagram"` // 1-64
	HexagramName string `json:"hexagram_name"`
	ChangingLine int    `json:"changing_line"` // 1-6

	PersonalHexagram     int    `json:"personal_hexagram"`
	PersonalHexagramName string `json:"personal_hexagram_name"`
}

// BiorhythmResult holds the three sinusoidal cycle values, each in [-1, 1]
type BiorhythmResult struct {
	Meta ResultMeta `json:"meta"`

	DaysAlive int64 `json:"days_alive"`

	Physical     float64 `json:"physical"`     // 23-day cycle
	Emotional    float64 `json:"emotional"`    // 28-day cycle
	Intellectual float64 `json:"intellectual"` // 33-day cycle

	PhysicalPhase     string `json:"physical_phase"`
	EmotionalPhase    string `json:"emotional_phase"`
	IntellectualPhase string `json:"intellectual_phase"`

	// CriticalDay is set when any cycle crosses zero (|value| < 0.10)
	CriticalDay bool `json:"critical_day"`
}

// DomainResults aggregates every calculator's output for one day
type DomainResults struct {
	Moon        MoonResult        `json:"moon"`
	Numerology  NumerologyResult  `json:"numerology"`
	Solar       SolarResult       `json:"solar"`
	HumanDesign HumanDesignResult `json:"human_design"`
	IChing      IChingResult      `json:"i_ching"`
	Biorhythm   BiorhythmResult   `json:"biorhythm"`
}

// DegradedDomains lists the domains that used a fallback, in fixed order
func (r *DomainResults) DegradedDomains() []Domain {
	var out []Domain
	for _, m := range []ResultMeta{
		r.Moon.Meta, r.Numerology.Meta, r.Solar.Meta,
		r.HumanDesign.Meta, r.IChing.Meta, r.Biorhythm.Meta,
	} {
		if m.Degraded {
			out = append(out, m.Domain)
		}
	}
	return out
}
