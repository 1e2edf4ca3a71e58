package risk

import "github.com/fjod/mycogrow/storefront-service/internal/domain"

const (
	MinLevel = 0
	MaxLevel = 100
)

type band struct {
	upper int // inclusive
	tier  domain.RiskTier
}

// bands are evaluated in ascending order, first match wins.
var bands = []band{
	{upper: 25, tier: domain.RiskTier{Level: domain.RiskLow, Label: "Low", LocalLabel: "Bajo", RejectionPct: 10, Color: "emerald"}},
	{upper: 50, tier: domain.RiskTier{Level: domain.RiskModerate, Label: "Moderate", LocalLabel: "Moderado", RejectionPct: 35, Color: "amber"}},
	{upper: 75, tier: domain.RiskTier{Level: domain.RiskHigh, Label: "High", LocalLabel: "Alto", RejectionPct: 65, Color: "orange"}},
	{upper: MaxLevel, tier: domain.RiskTier{Level: domain.RiskVeryHigh, Label: "Very High", LocalLabel: "Muy alto", RejectionPct: 90, Color: "red"}},
}

// Estimate classifies a soil metal level into a rejection risk tier.
// Levels outside [MinLevel, MaxLevel] are clamped first; the returned tier
// reports the clamped level.
func Estimate(metalLevel int) domain.RiskTier {
	level := Clamp(metalLevel)
	for _, b := range bands {
		if level <= b.upper {
			t := b.tier
			t.MetalLevel = level
			return t
		}
	}
	// unreachable: the last band covers MaxLevel
	t := bands[len(bands)-1].tier
	t.MetalLevel = level
	return t
}

// Clamp bounds a metal level to [MinLevel, MaxLevel].
func Clamp(metalLevel int) int {
	return min(max(metalLevel, MinLevel), MaxLevel)
}

// Tiers lists every tier in ascending severity.
func Tiers() []domain.RiskTier {
	out := make([]domain.RiskTier, len(bands))
	for i, b := range bands {
		out[i] = b.tier
	}
	return out
}
