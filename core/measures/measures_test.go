// core/measures/measures_test.go
package measures

import (
	"testing"

	"sptliq-core/engine"
)

func TestPossibilityThresholds(t *testing.T) {
	cases := []struct {
		pl   float64
		want Possibility
	}{
		{0.0, PossibilityLow},
		{0.2999, PossibilityLow},
		{0.3, PossibilityMedium},
		{0.4999, PossibilityMedium},
		{0.5, PossibilityHigh},
		{1.0, PossibilityHigh},
	}
	for _, c := range cases {
		if got := Of(c.pl); got != c.want {
			t.Errorf("Of(%v) = %v, want %v", c.pl, got, c.want)
		}
	}
}

func TestRecommend(t *testing.T) {
	if got := Recommend(ClassB, engine.GradeSevere); got != "Completely eliminate liquefaction settlement" {
		t.Errorf("B/severe: %q", got)
	}
	if got := Recommend(ClassD, engine.GradeSlight); got != "No measures needed" {
		t.Errorf("D/slight: %q", got)
	}
	if got := Recommend(ClassC, engine.GradeNone); got != "No measures required" {
		t.Errorf("C/none: %q", got)
	}
	if got := Recommend(BuildingClass("X"), engine.GradeSlight); got != "" {
		t.Errorf("unknown class should yield empty, got %q", got)
	}
}
