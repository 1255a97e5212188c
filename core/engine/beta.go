// core/engine/beta.go
package engine

import (
	"fmt"

	"sptliq-core/spt"
)

// β values per design earthquake group. An unknown group degrades to
// group 1 with a warning rather than failing.
func resolveBeta(b spt.Beta, warn *[]string) float64 {
	if b.Mode == spt.BetaFormula {
		beta := 0.20*b.Magnitude - 0.50
		if beta < 0.80 {
			beta = 0.80
		} else if beta > 1.05 {
			beta = 1.05
		}
		return beta
	}
	switch b.Group {
	case "1":
		return 0.80
	case "2":
		return 0.95
	case "3":
		return 1.05
	default:
		*warn = append(*warn, fmt.Sprintf("unknown design earthquake group %q, using group 1 (β=0.80)", b.Group))
		return 0.80
	}
}
