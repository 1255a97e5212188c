// core/engine/grade.go
package engine

// Grade is the liquefaction severity class of a site.
type Grade string

const (
	GradeNone     Grade = "none"
	GradeSlight   Grade = "slight"
	GradeModerate Grade = "moderate"
	GradeSevere   Grade = "severe"
)

// Label returns the report wording for a grade.
func (g Grade) Label() string {
	switch g {
	case GradeSlight:
		return "Slight Liquefaction"
	case GradeModerate:
		return "Moderate Liquefaction"
	case GradeSevere:
		return "Severe Liquefaction"
	default:
		return "No Liquefaction"
	}
}

// Classify maps a liquefaction index onto a grade using the threshold
// table for the given discrimination depth. The 20 m table is
// (6, 18]; every other depth uses the 15 m table (5, 15].
func Classify(index float64, discriminationDepth int) Grade {
	t1, t2 := 5.0, 15.0
	if discriminationDepth == 20 {
		t1, t2 = 6.0, 18.0
	}
	switch {
	case index <= 0:
		return GradeNone
	case index <= t1:
		return GradeSlight
	case index <= t2:
		return GradeModerate
	default:
		return GradeSevere
	}
}
