package report

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilintux/skyforge/internal/alignconfig"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

func newTestAssembler() *Assembler {
	return NewAssembler(alignconfig.Default(), logger.NewNop())
}

func specProfile() *contracts.Profile {
	return &contracts.Profile{
		Name:      "jane",
		Version:   1,
		BirthDate: contracts.NewDate(1992, time.June, 21),
	}
}

func TestComputeDayDegradedFallbacks(t *testing.T) {
	a := newTestAssembler()

	rep, err := a.ComputeDay(context.Background(), specProfile(), contracts.NewDate(2026, time.March, 20))
	require.NoError(t, err)

	// No location: moon and solar used the UTC fallback
	assert.True(t, rep.Results.Moon.Meta.Degraded)
	assert.Contains(t, rep.Results.Moon.Meta.Fallbacks, contracts.FallbackUTC)
	assert.True(t, rep.Results.Solar.Meta.Degraded)
	assert.Contains(t, rep.Results.Solar.Meta.Fallbacks, contracts.FallbackUTC)

	// No birth time: human design and i ching used the noon fallback
	assert.True(t, rep.Results.HumanDesign.Meta.Degraded)
	assert.Contains(t, rep.Results.HumanDesign.Meta.Fallbacks, contracts.FallbackNoon)
	assert.True(t, rep.Results.IChing.Meta.Degraded)
	assert.Contains(t, rep.Results.IChing.Meta.Fallbacks, contracts.FallbackNoon)

	// Date-only domains are never degraded
	assert.False(t, rep.Results.Numerology.Meta.Degraded)
	assert.False(t, rep.Results.Biorhythm.Meta.Degraded)

	assert.Equal(t, []contracts.Domain{
		contracts.DomainMoon, contracts.DomainSolar,
		contracts.DomainHumanDesign, contracts.DomainIChing,
	}, rep.Results.DegradedDomains())

	// Numerology comes purely from the birth date
	assert.Equal(t, 3, rep.Results.Numerology.LifePath)
	// Biorhythm from the whole-day count between birth and target
	assert.Equal(t, int64(12325), rep.Results.Biorhythm.DaysAlive)
}

func TestComputeDayFullProfileNotDegraded(t *testing.T) {
	a := newTestAssembler()

	profile := specProfile()
	profile.BirthTime = "08:30"
	profile.Location = &contracts.Location{
		Place: "Chicago", Latitude: 41.8781, Longitude: -87.6298,
		Timezone: "America/Chicago",
	}

	rep, err := a.ComputeDay(context.Background(), profile, contracts.NewDate(2026, time.March, 20))
	require.NoError(t, err)
	assert.Empty(t, rep.Results.DegradedDomains())
}

func TestComputeDayDeterministic(t *testing.T) {
	a := newTestAssembler()
	date := contracts.NewDate(2026, time.March, 20)

	first, err := a.ComputeDay(context.Background(), specProfile(), date)
	require.NoError(t, err)
	second, err := a.ComputeDay(context.Background(), specProfile(), date)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON, "serialized reports must be byte-identical")

	// A fresh assembler produces the same bytes too
	third, err := newTestAssembler().ComputeDay(context.Background(), specProfile(), date)
	require.NoError(t, err)
	thirdJSON, err := json.Marshal(third)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, thirdJSON)
}

func TestComputeDayInvalidProfile(t *testing.T) {
	a := newTestAssembler()

	_, err := a.ComputeDay(context.Background(), &contracts.Profile{Name: "no-birth-date"},
		contracts.NewDate(2026, time.March, 20))
	assert.ErrorIs(t, err, contracts.ErrProfileInvalid)
}

func TestComputeDayReportShape(t *testing.T) {
	a := newTestAssembler()
	date := contracts.NewDate(2026, time.March, 20)

	rep, err := a.ComputeDay(context.Background(), specProfile(), date)
	require.NoError(t, err)

	assert.Equal(t, date, rep.Date)
	assert.Equal(t, contracts.ProfileRef{Name: "jane", Version: 1}, rep.Profile)

	assert.GreaterOrEqual(t, rep.Risk.Score, 0.0)
	assert.LessOrEqual(t, rep.Risk.Score, 100.0)
	assert.Contains(t, []string{contracts.RiskLow, contracts.RiskModerate, contracts.RiskHigh}, rep.Risk.Level)

	assert.NotEmpty(t, rep.Recommendation.Element)
	assert.NotEmpty(t, rep.Recommendation.Energy)
	assert.NotEmpty(t, rep.Recommendation.Exercise)
	assert.NotEmpty(t, rep.Recommendation.Nourishment)
	assert.NotEmpty(t, rep.Recommendation.ReadingID)
}
