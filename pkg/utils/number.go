package utils

import "math"

// RoundToCents arredonda um valor monetário para duas casas decimais
func RoundToCents(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
