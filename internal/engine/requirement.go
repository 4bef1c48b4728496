package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// firstNumber matches the first integer or decimal token embedded in a
// requirement descriptor, e.g. "3 sets" or "2.5 per room".
var firstNumber = regexp.MustCompile(`\d+(\.\d+)?`)

// IsNotRequired reports whether a raw requirement descriptor marks the item
// as not required at a rating: the empty string, a lone dash, or any
// "0"-prefixed value ("0", "0 sets"). This marker overrides every
// calculation rule.
func IsNotRequired(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return true
	}
	return strings.HasPrefix(s, "0")
}

// ExtractMultiplier parses the per-item base multiplier out of a requirement
// descriptor: the first embedded numeric token, or 1 when the text carries no
// number at all ("Standard", "Yes"). The fallback is deliberate — free-text
// requirements still mean one of the item is needed per counted unit.
func ExtractMultiplier(raw string) float64 {
	match := firstNumber.FindString(raw)
	if match == "" {
		return 1
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 1
	}
	return n
}
