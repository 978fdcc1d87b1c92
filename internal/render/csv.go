package render

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/smilintux/skyforge/internal/contracts"
)

// csvHeader is the stable column set; one row per day
var csvHeader = []string{
	"date", "profile", "version",
	"moon_phase_fraction", "moon_phase", "moon_illumination", "moon_sign", "moon_element",
	"life_path", "personal_year", "personal_month", "personal_day", "universal_day",
	"sun_longitude", "sun_sign", "house_focus", "days_to_solar_return",
	"sun_gate", "sun_line", "earth_gate", "earth_line", "natal_sun_gate",
	"hexagram", "hexagram_name", "changing_line", "personal_hexagram",
	"days_alive", "physical", "emotional", "intellectual", "critical_day",
	"risk_score", "risk_level", "warnings",
	"element", "energy", "exercise", "nourishment", "reading_id",
	"degraded_domains",
}

// CSV renders flat rows for spreadsheets and downstream Excel sinks
type CSV struct{}

// NewCSV creates the CSV renderer
func NewCSV() *CSV {
	return &CSV{}
}

// Format implements Renderer
func (c *CSV) Format() string { return "csv" }

// FileExtension implements Renderer
func (c *CSV) FileExtension() string { return "csv" }

// RenderReport implements Renderer
func (c *CSV) RenderReport(w io.Writer, r *contracts.DailyReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	if err := cw.Write(row(r)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// RenderCalendar implements Renderer
func (c *CSV) RenderCalendar(w io.Writer, cal *contracts.Calendar) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, day := range cal.Days {
		if err := cw.Write(row(day)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(r *contracts.DailyReport) []string {
	res := &r.Results
	degraded := make([]string, 0)
	for _, d := range res.DegradedDomains() {
		degraded = append(degraded, string(d))
	}

	return []string{
		r.Date.Format(contracts.DateLayout),
		r.Profile.Name,
		strconv.Itoa(r.Profile.Version),

		fixed4(res.Moon.PhaseFraction),
		res.Moon.PhaseName,
		fixed4(res.Moon.Illumination),
		res.Moon.Sign,
		res.Moon.Element,

		strconv.Itoa(res.Numerology.LifePath),
		strconv.Itoa(res.Numerology.PersonalYear),
		strconv.Itoa(res.Numerology.PersonalMonth),
		strconv.Itoa(res.Numerology.PersonalDay),
		strconv.Itoa(res.Numerology.UniversalDay),

		fixed4(res.Solar.Longitude),
		res.Solar.Sign,
		strconv.Itoa(res.Solar.HouseFocus),
		strconv.Itoa(res.Solar.DaysToSolarReturn),

		strconv.Itoa(res.HumanDesign.SunGate),
		strconv.Itoa(res.HumanDesign.SunLine),
		strconv.Itoa(res.HumanDesign.EarthGate),
		strconv.Itoa(res.HumanDesign.EarthLine),
		strconv.Itoa(res.HumanDesign.NatalSunGate),

		strconv.Itoa(res.IChing.Hexagram),
		res.IChing.HexagramName,
		strconv.Itoa(res.IChing.ChangingLine),
		strconv.Itoa(res.IChing.PersonalHexagram),

		strconv.FormatInt(res.Biorhythm.DaysAlive, 10),
		fixed4(res.Biorhythm.Physical),
		fixed4(res.Biorhythm.Emotional),
		fixed4(res.Biorhythm.Intellectual),
		strconv.FormatBool(res.Biorhythm.CriticalDay),

		fixed1(r.Risk.Score),
		r.Risk.Level,
		strings.Join(r.Risk.Warnings, "; "),

		r.Recommendation.Element,
		r.Recommendation.Energy,
		r.Recommendation.Exercise,
		r.Recommendation.Nourishment,
		r.Recommendation.ReadingID,

		strings.Join(degraded, ";"),
	}
}
