package contracts

import "time"

// RiskAssessment is the composite day risk derived from all domains.
// Never independently mutated; always rebuilt from domain results.
type RiskAssessment struct {
	// Score ∈ [0, 100], one decimal place
	Score float64 `json:"score"`
	// Level buckets the score: low (<35), moderate (<65), high (>=65)
	Level string `json:"level"`
	// Warnings is ordered: domains in fixed order, rules in fixed order
	Warnings []string `json:"warnings,omitempty"`
}

// Risk level buckets
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// Recommendation is the daily catalog selection, keyed by the
// element/energy signal derived from the Moon and Solar results
type Recommendation struct {
	Element string `json:"element"` // moon sign element (signal)
	Energy  string `json:"energy"`  // sun sign modality (signal)

	Exercise    string `json:"exercise"`
	Nourishment string `json:"nourishment"`
	ReadingID   string `json:"reading_id"`
	ReadingText string `json:"reading_text,omitempty"`
}

// DailyReport is the assembled, immutable alignment report for one day.
// Safe to cache indefinitely keyed by (profile name, version, date):
// it carries no wall-clock timestamps, only the target date.
type DailyReport struct {
	Date    time.Time  `json:"date"`
	Profile ProfileRef `json:"profile"`

	Results        DomainResults  `json:"results"`
	Risk           RiskAssessment `json:"risk"`
	Recommendation Recommendation `json:"recommendation"`
}

// DayError marks a single failed day inside a partial calendar
type DayError struct {
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

// Calendar is an ordered sequence of daily reports over an inclusive
// date range. Read-only after construction; Days ascend with no gaps
// except those listed in Errors (non-strict builds).
type Calendar struct {
	Profile ProfileRef `json:"profile"`
	Start   time.Time  `json:"start"`
	End     time.Time  `json:"end"`

	Days   []*DailyReport `json:"days"`
	Errors []DayError     `json:"errors,omitempty"`
}

// Len returns the number of assembled daily reports
func (c *Calendar) Len() int {
	return len(c.Days)
}

// Complete reports whether every day in the range was assembled
func (c *Calendar) Complete() bool {
	return len(c.Errors) == 0
}
