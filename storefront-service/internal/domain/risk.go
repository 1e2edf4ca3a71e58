package domain

// RiskLevel orders the contamination tiers by severity.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskModerate
	RiskHigh
	RiskVeryHigh
)

// String returns the display label of the level, or "Unknown" when out of range.
func (l RiskLevel) String() string {
	switch l {
	case RiskLow:
		return "Low"
	case RiskModerate:
		return "Moderate"
	case RiskHigh:
		return "High"
	case RiskVeryHigh:
		return "Very High"
	default:
		return "Unknown"
	}
}

// RiskTier is the classification of one metal level reading.
type RiskTier struct {
	Level        RiskLevel `json:"severity"`
	Label        string    `json:"label"`
	LocalLabel   string    `json:"local_label"`
	RejectionPct int       `json:"rejection_pct"`
	Color        string    `json:"color"`
	MetalLevel   int       `json:"metal_level"`
}
