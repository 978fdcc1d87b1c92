package render

import (
	"fmt"
	"io"

	"github.com/smilintux/skyforge/internal/contracts"
)

const (
	lineDouble = "═══════════════════════════════════════════════════════════"
	lineSingle = "───────────────────────────────────────────────────────────"
)

// Terminal renders the interactive CLI view
type Terminal struct{}

// NewTerminal creates the terminal renderer
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Format implements Renderer
func (t *Terminal) Format() string { return "terminal" }

// FileExtension implements Renderer
func (t *Terminal) FileExtension() string { return "txt" }

// RenderReport implements Renderer
func (t *Terminal) RenderReport(w io.Writer, r *contracts.DailyReport) error {
	res := &r.Results

	fmt.Fprintln(w, lineDouble)
	fmt.Fprintf(w, "  Daily Alignment - %s\n", r.Date.Format(contracts.DateLayout))
	fmt.Fprintf(w, "  Profile: %s (v%d)\n", r.Profile.Name, r.Profile.Version)
	fmt.Fprintln(w, lineSingle)

	fmt.Fprintf(w, "  🌙 Moon      : %s in %s (%s)\n",
		res.Moon.PhaseName, res.Moon.Sign, res.Moon.Element)
	fmt.Fprintf(w, "               phase %s · illumination %s\n",
		fixed4(res.Moon.PhaseFraction), fixed4(res.Moon.Illumination))
	for _, aspect := range res.Moon.Aspects {
		fmt.Fprintf(w, "               %s\n", aspect)
	}

	fmt.Fprintf(w, "  🔢 Numbers   : life path %d · personal day %d · universal day %d\n",
		res.Numerology.LifePath, res.Numerology.PersonalDay, res.Numerology.UniversalDay)

	fmt.Fprintf(w, "  ☀️ Sun       : %s · house %d (%s)\n",
		res.Solar.Sign, res.Solar.HouseFocus, res.Solar.HouseTheme)
	fmt.Fprintf(w, "               solar return in %d days\n", res.Solar.DaysToSolarReturn)

	fmt.Fprintf(w, "  🧬 Design    : sun gate %d.%d · earth gate %d.%d · natal %d.%d\n",
		res.HumanDesign.SunGate, res.HumanDesign.SunLine,
		res.HumanDesign.EarthGate, res.HumanDesign.EarthLine,
		res.HumanDesign.NatalSunGate, res.HumanDesign.NatalSunLine)

	fmt.Fprintf(w, "  ☯️ Hexagram  : %d - %s (line %d)\n",
		res.IChing.Hexagram, res.IChing.HexagramName, res.IChing.ChangingLine)

	fmt.Fprintf(w, "  📈 Biorhythm : P %s (%s) · E %s (%s) · I %s (%s)\n",
		fixed4(res.Biorhythm.Physical), res.Biorhythm.PhysicalPhase,
		fixed4(res.Biorhythm.Emotional), res.Biorhythm.EmotionalPhase,
		fixed4(res.Biorhythm.Intellectual), res.Biorhythm.IntellectualPhase)
	if res.Biorhythm.CriticalDay {
		fmt.Fprintln(w, "               ⚠️  critical day")
	}

	fmt.Fprintln(w, lineSingle)
	fmt.Fprintf(w, "  Risk: %s/100 (%s)\n", fixed1(r.Risk.Score), r.Risk.Level)
	for _, warning := range r.Risk.Warnings {
		fmt.Fprintf(w, "  ⚠️  %s\n", warning)
	}

	rec := r.Recommendation
	fmt.Fprintln(w, lineSingle)
	fmt.Fprintf(w, "  Element %s · Energy %s\n", rec.Element, rec.Energy)
	fmt.Fprintf(w, "  🏃 Exercise    : %s\n", rec.Exercise)
	fmt.Fprintf(w, "  🍲 Nourishment : %s\n", rec.Nourishment)
	fmt.Fprintf(w, "  📖 Reading     : [%s] %s\n", rec.ReadingID, rec.ReadingText)

	if degraded := res.DegradedDomains(); len(degraded) > 0 {
		fmt.Fprintln(w, lineSingle)
		fmt.Fprintf(w, "  ℹ️  fallback values used: %s\n", joinDomains(degraded))
	}
	fmt.Fprintln(w, lineDouble)

	return nil
}

// RenderCalendar implements Renderer
func (t *Terminal) RenderCalendar(w io.Writer, c *contracts.Calendar) error {
	fmt.Fprintln(w, lineDouble)
	fmt.Fprintf(w, "  Alignment Calendar - %s (v%d)\n", c.Profile.Name, c.Profile.Version)
	fmt.Fprintf(w, "  %s ~ %s · %d days\n",
		c.Start.Format(contracts.DateLayout), c.End.Format(contracts.DateLayout), c.Len())
	fmt.Fprintln(w, lineSingle)

	for _, day := range c.Days {
		marker := " "
		if day.Risk.Level == contracts.RiskHigh {
			marker = "⚠️"
		}
		fmt.Fprintf(w, "  %s %s  %-15s %-11s day %d  risk %5s %-8s %s\n",
			marker,
			day.Date.Format(contracts.DateLayout),
			day.Results.Moon.PhaseName,
			day.Results.Solar.Sign,
			day.Results.Numerology.PersonalDay,
			fixed1(day.Risk.Score),
			day.Risk.Level,
			day.Recommendation.Exercise)
	}

	if len(c.Errors) > 0 {
		fmt.Fprintln(w, lineSingle)
		for _, e := range c.Errors {
			fmt.Fprintf(w, "  ❌ %s: %s\n", e.Date.Format(contracts.DateLayout), e.Message)
		}
	}
	fmt.Fprintln(w, lineDouble)

	return nil
}
