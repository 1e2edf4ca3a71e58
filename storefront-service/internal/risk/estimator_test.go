package risk

import (
	"testing"

	"github.com/fjod/mycogrow/storefront-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEstimate_Bands(t *testing.T) {
	tests := []struct {
		level int
		want  domain.RiskLevel
		label string
		pct   int
	}{
		{0, domain.RiskLow, "Low", 10},
		{25, domain.RiskLow, "Low", 10},
		{26, domain.RiskModerate, "Moderate", 35},
		{50, domain.RiskModerate, "Moderate", 35},
		{51, domain.RiskHigh, "High", 65},
		{75, domain.RiskHigh, "High", 65},
		{76, domain.RiskVeryHigh, "Very High", 90},
		{100, domain.RiskVeryHigh, "Very High", 90},
	}

	for _, tt := range tests {
		tier := Estimate(tt.level)
		assert.Equal(t, tt.want, tier.Level, "level %d", tt.level)
		assert.Equal(t, tt.label, tier.Label, "level %d", tt.level)
		assert.Equal(t, tt.pct, tier.RejectionPct, "level %d", tt.level)
		assert.Equal(t, tt.level, tier.MetalLevel)
	}
}

func TestEstimate_BoundaryBetweenLowAndModerate(t *testing.T) {
	assert.NotEqual(t, Estimate(25).Level, Estimate(26).Level)
}

func TestEstimate_OutOfRangeIsClamped(t *testing.T) {
	low := Estimate(-40)
	assert.Equal(t, domain.RiskLow, low.Level)
	assert.Equal(t, 0, low.MetalLevel)

	high := Estimate(250)
	assert.Equal(t, domain.RiskVeryHigh, high.Level)
	assert.Equal(t, 100, high.MetalLevel)
}

func TestEstimate_Deterministic(t *testing.T) {
	assert.Equal(t, Estimate(60), Estimate(60))
}

func TestEstimate_LocalLabelAndColor(t *testing.T) {
	tier := Estimate(60)
	assert.Equal(t, "Alto", tier.LocalLabel)
	assert.Equal(t, "orange", tier.Color)
}

func TestTiers_AscendingSeverity(t *testing.T) {
	tiers := Tiers()
	assert.Len(t, tiers, 4)
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i].Level, tiers[i-1].Level)
		assert.Greater(t, tiers[i].RejectionPct, tiers[i-1].RejectionPct)
	}
}
