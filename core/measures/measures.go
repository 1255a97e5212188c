// core/measures/measures.go
package measures

import "sptliq-core/engine"

// Possibility is the per-layer (or site-mean) liquefaction likelihood
// tier derived from PL. Display-only; never feeds back into the
// index.
type Possibility string

const (
	PossibilityHigh   Possibility = "high"
	PossibilityMedium Possibility = "medium"
	PossibilityLow    Possibility = "low"
)

// Of tiers a liquefaction probability: ≥0.5 high, ≥0.3 medium,
// otherwise low.
func Of(pl float64) Possibility {
	switch {
	case pl >= 0.5:
		return PossibilityHigh
	case pl >= 0.3:
		return PossibilityMedium
	default:
		return PossibilityLow
	}
}

// Label returns the report wording for a tier.
func (p Possibility) Label() string {
	switch p {
	case PossibilityHigh:
		return "High Possibility"
	case PossibilityMedium:
		return "Medium Possibility"
	default:
		return "Low Possibility"
	}
}

// BuildingClass is the seismic fortification class of the structure
// the recommendation is for.
type BuildingClass string

const (
	ClassB BuildingClass = "B"
	ClassC BuildingClass = "C"
	ClassD BuildingClass = "D"
)

// Anti-liquefaction measures table, building class × grade.
var recommendations = map[BuildingClass]map[engine.Grade]string{
	ClassB: {
		engine.GradeSlight:   "Partially eliminate liquefaction settlement, or treat foundation and superstructure",
		engine.GradeModerate: "Completely eliminate liquefaction settlement, or partially eliminate liquefaction settlement and treat foundation and superstructure",
		engine.GradeSevere:   "Completely eliminate liquefaction settlement",
	},
	ClassC: {
		engine.GradeSlight:   "Treat foundation and superstructure, or may not treat",
		engine.GradeModerate: "Treat foundation and superstructure, or take stricter measures",
		engine.GradeSevere:   "Completely eliminate liquefaction settlement, or partially eliminate liquefaction settlement and treat foundation and superstructure",
	},
	ClassD: {
		engine.GradeSlight:   "No measures needed",
		engine.GradeModerate: "No measures needed",
		engine.GradeSevere:   "Treat foundation and superstructure, or take other economical and reasonable measures",
	},
}

// Recommend looks up the anti-liquefaction measure for a building
// class and computed grade. Ungraded (no-liquefaction) sites need no
// measures; an unknown class yields "".
func Recommend(class BuildingClass, g engine.Grade) string {
	if g == engine.GradeNone {
		return "No measures required"
	}
	return recommendations[class][g]
}
