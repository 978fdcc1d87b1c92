package alignconfig

// Config is the tunable alignment strategy: risk weights, warning
// thresholds, and the recommendation catalog. One YAML file, hashed for
// reproducibility, so two reports disagreeing always trace back to
// either inputs or a strategy change.
type Config struct {
	Meta    Meta    `yaml:"meta" json:"meta"`
	Risk    Risk    `yaml:"risk" json:"risk"`
	Catalog Catalog `yaml:"catalog" json:"catalog"`
}

// Meta identifies the strategy
type Meta struct {
	StrategyID string `yaml:"strategy_id" json:"strategy_id"`
	Version    string `yaml:"version" json:"version"`
}

// Risk holds aggregation weights and warning thresholds
type Risk struct {
	WeightsPct Weights    `yaml:"weights_pct" json:"weights_pct"`
	Thresholds Thresholds `yaml:"thresholds" json:"thresholds"`
}

// Weights are per-domain contributions to the composite score, in
// percent. Must sum to 100.
type Weights struct {
	Biorhythm   int `yaml:"biorhythm" json:"biorhythm"`
	Moon        int `yaml:"moon" json:"moon"`
	Numerology  int `yaml:"numerology" json:"numerology"`
	Solar       int `yaml:"solar" json:"solar"`
	HumanDesign int `yaml:"human_design" json:"human_design"`
	IChing      int `yaml:"i_ching" json:"i_ching"`
}

// Sum returns the weight total in percent
func (w Weights) Sum() int {
	return w.Biorhythm + w.Moon + w.Numerology + w.Solar + w.HumanDesign + w.IChing
}

// Thresholds drive warning generation
type Thresholds struct {
	// CycleLow: a biorhythm cycle at or below this value warns
	CycleLow float64 `yaml:"cycle_low" json:"cycle_low"`
	// FullMoonBand: phase fraction within this distance of 0.5 warns
	FullMoonBand float64 `yaml:"full_moon_band" json:"full_moon_band"`
}

// Catalog holds the fixed recommendation entries, keyed by element
type Catalog struct {
	Exercise    map[string][]string `yaml:"exercise" json:"exercise"`
	Nourishment map[string][]string `yaml:"nourishment" json:"nourishment"`
	Readings    []Reading           `yaml:"readings" json:"readings"`
}

// Reading is one spiritual-reading excerpt in the catalog
type Reading struct {
	ID      string `yaml:"id" json:"id"`
	Element string `yaml:"element" json:"element"`
	Energy  string `yaml:"energy" json:"energy"` // Cardinal/Fixed/Mutable, "" = any
	Excerpt string `yaml:"excerpt" json:"excerpt"`
}
