package render

import (
	"encoding/json"
	"io"

	"github.com/smilintux/skyforge/internal/contracts"
)

// JSON renders the canonical machine-readable form. Field order follows
// the struct definitions, so repeated renders of the same report are
// byte-identical. External sinks (PDF, Excel) consume this stream.
type JSON struct{}

// NewJSON creates the JSON renderer
func NewJSON() *JSON {
	return &JSON{}
}

// Format implements Renderer
func (j *JSON) Format() string { return "json" }

// FileExtension implements Renderer
func (j *JSON) FileExtension() string { return "json" }

// RenderReport implements Renderer
func (j *JSON) RenderReport(w io.Writer, r *contracts.DailyReport) error {
	return encode(w, r)
}

// RenderCalendar implements Renderer
func (j *JSON) RenderCalendar(w io.Writer, c *contracts.Calendar) error {
	return encode(w, c)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
