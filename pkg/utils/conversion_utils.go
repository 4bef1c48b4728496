package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFloatList parses a comma-separated list of floats, e.g. the
// "1.0,1.2,1.5,2.2,3.5" form used for the quality-multiplier override.
func ParseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q as float: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}
