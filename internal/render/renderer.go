package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/smilintux/skyforge/internal/contracts"
)

// Renderer serializes reports and calendars to one output format.
// Structure-preserving: every domain field appears under a stable name
// and numeric values pass through untouched (precision was fixed
// upstream by the calculators).
type Renderer interface {
	// Format is the registry key, e.g. "json"
	Format() string
	// FileExtension without the dot, e.g. "json"
	FileExtension() string

	RenderReport(w io.Writer, r *contracts.DailyReport) error
	RenderCalendar(w io.Writer, c *contracts.Calendar) error
}

// registry of available renderers, keyed by format name
var registry = map[string]Renderer{}

func register(r Renderer) {
	registry[r.Format()] = r
}

func init() {
	register(NewJSON())
	register(NewMarkdown())
	register(NewCSV())
	register(NewTerminal())
}

// For returns the renderer for a format name
func For(format string) (Renderer, error) {
	r, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %v)", format, Formats())
	}
	return r, nil
}

// Formats lists the registered format names, sorted
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fixed4 renders a result float at its fixed 4-decimal precision
func fixed4(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// fixed1 renders the risk score at its fixed 1-decimal precision
func fixed1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
