package filtering

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var firstNumber = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

const lakh = 100_000

// ParseSalaryApprox derives an approximate annual figure in rupees from a
// free-form salary string like "12 LPA" or "₹40k/month". The first number in
// the string is taken; "lpa" means lakhs per annum, "/month" means a monthly
// figure (thousands when a "k" suffix is present), and anything else is
// assumed to be lakhs per annum. Unparseable strings yield 0.
func ParseSalaryApprox(s string) int {
	match := firstNumber.FindString(s)
	if match == "" {
		return 0
	}

	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}

	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "lpa"):
		return int(math.Round(n * lakh))
	case strings.Contains(lower, "/month"):
		if strings.Contains(lower, "k") {
			return int(math.Round(n * 1000 * 12))
		}
		return int(math.Round(n * 12))
	default:
		return int(math.Round(n * lakh))
	}
}
