package alignconfig

import (
	"fmt"

	"github.com/smilintux/skyforge/internal/almanac"
)

var validElements = map[string]bool{
	almanac.ElementFire:  true,
	almanac.ElementEarth: true,
	almanac.ElementAir:   true,
	almanac.ElementWater: true,
}

var validEnergies = map[string]bool{
	"":                       true, // any
	almanac.ModalityCardinal: true,
	almanac.ModalityFixed:    true,
	almanac.ModalityMutable:  true,
}

// Validate checks strategy invariants. Weights must cover all domains
// exactly, thresholds must stay in their meaningful ranges, and the
// catalog must offer at least one entry per element so selection is
// total.
func Validate(cfg *Config) error {
	if cfg.Meta.StrategyID == "" {
		return fmt.Errorf("meta.strategy_id is required")
	}

	if sum := cfg.Risk.WeightsPct.Sum(); sum != 100 {
		return fmt.Errorf("risk.weights_pct must sum to 100, got %d", sum)
	}

	t := cfg.Risk.Thresholds
	if t.CycleLow < -1 || t.CycleLow >= 0 {
		return fmt.Errorf("risk.thresholds.cycle_low must be in [-1, 0), got %v", t.CycleLow)
	}
	if t.FullMoonBand <= 0 || t.FullMoonBand >= 0.5 {
		return fmt.Errorf("risk.thresholds.full_moon_band must be in (0, 0.5), got %v", t.FullMoonBand)
	}

	if err := validateTagMap("catalog.exercise", cfg.Catalog.Exercise); err != nil {
		return err
	}
	if err := validateTagMap("catalog.nourishment", cfg.Catalog.Nourishment); err != nil {
		return err
	}

	if len(cfg.Catalog.Readings) == 0 {
		return fmt.Errorf("catalog.readings must not be empty")
	}
	seen := make(map[string]bool)
	perElement := make(map[string]int)
	for i, r := range cfg.Catalog.Readings {
		if r.ID == "" {
			return fmt.Errorf("catalog.readings[%d]: id is required", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("catalog.readings: duplicate id %q", r.ID)
		}
		seen[r.ID] = true
		if !validElements[r.Element] {
			return fmt.Errorf("catalog.readings[%d]: unknown element %q", i, r.Element)
		}
		if !validEnergies[r.Energy] {
			return fmt.Errorf("catalog.readings[%d]: unknown energy %q", i, r.Energy)
		}
		perElement[r.Element]++
	}
	for element := range validElements {
		if perElement[element] == 0 {
			return fmt.Errorf("catalog.readings: no reading for element %s", element)
		}
	}

	return nil
}

func validateTagMap(name string, m map[string][]string) error {
	for element := range validElements {
		tags, ok := m[element]
		if !ok || len(tags) == 0 {
			return fmt.Errorf("%s: no entries for element %s", name, element)
		}
	}
	for element, tags := range m {
		if !validElements[element] {
			return fmt.Errorf("%s: unknown element %q", name, element)
		}
		seen := make(map[string]bool)
		for _, tag := range tags {
			if tag == "" {
				return fmt.Errorf("%s.%s: empty tag", name, element)
			}
			if seen[tag] {
				return fmt.Errorf("%s.%s: duplicate tag %q", name, element, tag)
			}
			seen[tag] = true
		}
	}
	return nil
}
