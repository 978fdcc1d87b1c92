package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/smilintux/skyforge/internal/contracts"
)

// Markdown renders human-readable reports for docs and messaging sinks
type Markdown struct{}

// NewMarkdown creates the Markdown renderer
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Format implements Renderer
func (m *Markdown) Format() string { return "markdown" }

// FileExtension implements Renderer
func (m *Markdown) FileExtension() string { return "md" }

// RenderReport implements Renderer
func (m *Markdown) RenderReport(w io.Writer, r *contracts.DailyReport) error {
	var b strings.Builder

	date := r.Date.Format(contracts.DateLayout)
	fmt.Fprintf(&b, "# Daily Alignment - %s\n\n", date)
	fmt.Fprintf(&b, "Profile: **%s** (v%d)\n\n", r.Profile.Name, r.Profile.Version)

	m.writeResults(&b, r)

	fmt.Fprintf(&b, "## Risk\n\n")
	fmt.Fprintf(&b, "- Score: **%s / 100** (%s)\n", fixed1(r.Risk.Score), r.Risk.Level)
	for _, warning := range r.Risk.Warnings {
		fmt.Fprintf(&b, "- ⚠️ %s\n", warning)
	}
	b.WriteString("\n")

	rec := r.Recommendation
	fmt.Fprintf(&b, "## Recommendations (%s / %s)\n\n", rec.Element, rec.Energy)
	fmt.Fprintf(&b, "- Exercise: `%s`\n", rec.Exercise)
	fmt.Fprintf(&b, "- Nourishment: `%s`\n", rec.Nourishment)
	fmt.Fprintf(&b, "- Reading %s: *%s*\n", rec.ReadingID, rec.ReadingText)

	if degraded := r.Results.DegradedDomains(); len(degraded) > 0 {
		fmt.Fprintf(&b, "\n> Degraded domains (fallback values used): %s\n",
			joinDomains(degraded))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderCalendar implements Renderer
func (m *Markdown) RenderCalendar(w io.Writer, c *contracts.Calendar) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Alignment Calendar - %s (v%d)\n\n",
		c.Profile.Name, c.Profile.Version)
	fmt.Fprintf(&b, "%s - %s, %d days\n\n",
		c.Start.Format(contracts.DateLayout), c.End.Format(contracts.DateLayout), c.Len())

	b.WriteString("| Date | Moon | Sun | Day # | Hexagram | Risk | Exercise |\n")
	b.WriteString("|------|------|-----|-------|----------|------|----------|\n")
	for _, day := range c.Days {
		fmt.Fprintf(&b, "| %s | %s (%s) | %s | %d | %d %s | %s %s | %s |\n",
			day.Date.Format(contracts.DateLayout),
			day.Results.Moon.PhaseName, day.Results.Moon.Sign,
			day.Results.Solar.Sign,
			day.Results.Numerology.PersonalDay,
			day.Results.IChing.Hexagram, day.Results.IChing.HexagramName,
			fixed1(day.Risk.Score), day.Risk.Level,
			day.Recommendation.Exercise)
	}

	if len(c.Errors) > 0 {
		b.WriteString("\n## Failed days\n\n")
		for _, e := range c.Errors {
			fmt.Fprintf(&b, "- %s: %s\n", e.Date.Format(contracts.DateLayout), e.Message)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (m *Markdown) writeResults(b *strings.Builder, r *contracts.DailyReport) {
	moon := r.Results.Moon
	fmt.Fprintf(b, "## Moon\n\n")
	fmt.Fprintf(b, "- Phase: **%s** (fraction %s, illumination %s)\n",
		moon.PhaseName, fixed4(moon.PhaseFraction), fixed4(moon.Illumination))
	fmt.Fprintf(b, "- Sign: %s (%s, %s)\n", moon.Sign, moon.Element, moon.Modality)
	for _, aspect := range moon.Aspects {
		fmt.Fprintf(b, "- Aspect: %s\n", aspect)
	}
	b.WriteString("\n")

	num := r.Results.Numerology
	fmt.Fprintf(b, "## Numerology\n\n")
	fmt.Fprintf(b, "- Life path: **%d**", num.LifePath)
	if num.LifePathMaster {
		b.WriteString(" (master)")
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "- Personal year/month/day: %d / %d / %d\n",
		num.PersonalYear, num.PersonalMonth, num.PersonalDay)
	fmt.Fprintf(b, "- Universal day: %d\n\n", num.UniversalDay)

	sol := r.Results.Solar
	fmt.Fprintf(b, "## Solar\n\n")
	fmt.Fprintf(b, "- Sun: %s at %s° (%s, %s)\n", sol.Sign, fixed4(sol.Longitude), sol.Element, sol.Modality)
	fmt.Fprintf(b, "- House focus: %d - %s\n", sol.HouseFocus, sol.HouseTheme)
	fmt.Fprintf(b, "- Days to solar return: %d\n\n", sol.DaysToSolarReturn)

	hd := r.Results.HumanDesign
	fmt.Fprintf(b, "## Human Design\n\n")
	fmt.Fprintf(b, "- Sun gate %d.%d, Earth gate %d.%d\n", hd.SunGate, hd.SunLine, hd.EarthGate, hd.EarthLine)
	fmt.Fprintf(b, "- Natal Sun gate %d.%d\n\n", hd.NatalSunGate, hd.NatalSunLine)

	ich := r.Results.IChing
	fmt.Fprintf(b, "## I Ching\n\n")
	fmt.Fprintf(b, "- Hexagram %d - %s (changing line %d)\n", ich.Hexagram, ich.HexagramName, ich.ChangingLine)
	fmt.Fprintf(b, "- Personal hexagram %d - %s\n\n", ich.PersonalHexagram, ich.PersonalHexagramName)

	bio := r.Results.Biorhythm
	fmt.Fprintf(b, "## Biorhythm (day %d)\n\n", bio.DaysAlive)
	fmt.Fprintf(b, "- Physical: %s (%s)\n", fixed4(bio.Physical), bio.PhysicalPhase)
	fmt.Fprintf(b, "- Emotional: %s (%s)\n", fixed4(bio.Emotional), bio.EmotionalPhase)
	fmt.Fprintf(b, "- Intellectual: %s (%s)\n", fixed4(bio.Intellectual), bio.IntellectualPhase)
	if bio.CriticalDay {
		b.WriteString("- **Critical day**\n")
	}
	b.WriteString("\n")
}

func joinDomains(domains []contracts.Domain) string {
	parts := make([]string, len(domains))
	for i, d := range domains {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}
