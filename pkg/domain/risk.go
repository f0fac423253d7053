package domain

// RiskLevel summarizes the severity of findings in a report. Levels form a
// total order: RiskUnknown < RiskLow < RiskMedium < RiskHigh. RiskUnknown
// means no data could be collected at all and must never be conflated with
// RiskLow (absence of evidence is not evidence of absence).
type RiskLevel string

const (
	RiskUnknown RiskLevel = "UNKNOWN"
	RiskLow     RiskLevel = "LOW"
	RiskMedium  RiskLevel = "MEDIUM"
	RiskHigh    RiskLevel = "HIGH"
)

// riskRanks orders risk levels for comparison.
var riskRanks = map[RiskLevel]int{ //nolint: gochecknoglobals
	RiskUnknown: 0,
	RiskLow:     1,
	RiskMedium:  2,
	RiskHigh:    3,
}

// Rank returns the position of the level in the total order. Unrecognized
// values rank as RiskUnknown.
func (r RiskLevel) Rank() int { return riskRanks[r] }

// MaxRisk returns the more severe of two risk levels. Because RiskUnknown is
// the bottom of the order, it is absorbed by any real finding: combining
// RiskUnknown with RiskMedium yields RiskMedium, and only two RiskUnknown
// inputs stay RiskUnknown.
func MaxRisk(a, b RiskLevel) RiskLevel {
	if b.Rank() > a.Rank() {
		return b
	}

	return a
}
