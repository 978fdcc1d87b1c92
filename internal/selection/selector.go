package selection

import (
	"sort"

	"github.com/smilintux/skyforge/internal/alignconfig"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// Selector picks the day's exercise, nourishment, and reading from the
// fixed catalog. A pure function of the Moon and Solar results: the
// Moon sign's element keys the catalog, the Sun sign's modality is the
// energy signal, and the solar house focus rotates through the matching
// entries. Candidate lists are sorted lexically before indexing so the
// choice never depends on machine or map order.
type Selector struct {
	catalog *alignconfig.Catalog
	logger  *logger.Logger
}

// NewSelector creates a new recommendation selector
func NewSelector(cfg *alignconfig.Config, log *logger.Logger) *Selector {
	return &Selector{catalog: &cfg.Catalog, logger: log}
}

// Select maps the elemental/energy signals to catalog entries
func (s *Selector) Select(results *contracts.DomainResults) contracts.Recommendation {
	element := results.Moon.Element
	energy := results.Solar.Modality
	// House focus 1-12 rotates the day's pick within the element's entries
	rotation := results.Solar.HouseFocus - 1

	rec := contracts.Recommendation{
		Element: element,
		Energy:  energy,
	}

	rec.Exercise = pickTag(s.catalog.Exercise[element], rotation)
	rec.Nourishment = pickTag(s.catalog.Nourishment[element], rotation)

	if reading := s.pickReading(element, energy, rotation); reading != nil {
		rec.ReadingID = reading.ID
		rec.ReadingText = reading.Excerpt
	}

	s.logger.WithFields(map[string]interface{}{
		"element":     element,
		"energy":      energy,
		"exercise":    rec.Exercise,
		"nourishment": rec.Nourishment,
		"reading":     rec.ReadingID,
	}).Debug("Selected recommendations")

	return rec
}

// pickTag sorts the candidates lexically and rotates by the house focus
func pickTag(candidates []string, rotation int) string {
	if len(candidates) == 0 {
		return ""
	}
	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)
	return sorted[rotation%len(sorted)]
}

// pickReading prefers readings matching both element and energy, then
// falls back to element alone (the catalog guarantees one per element)
func (s *Selector) pickReading(element, energy string, rotation int) *alignconfig.Reading {
	matches := s.filterReadings(element, energy)
	if len(matches) == 0 {
		matches = s.filterReadings(element, "")
	}
	if len(matches) == 0 {
		return nil
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})
	return &matches[rotation%len(matches)]
}

func (s *Selector) filterReadings(element, energy string) []alignconfig.Reading {
	var out []alignconfig.Reading
	for _, r := range s.catalog.Readings {
		if r.Element != element {
			continue
		}
		if energy != "" && r.Energy != "" && r.Energy != energy {
			continue
		}
		out = append(out, r)
	}
	return out
}
