package youtube

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses the ISO-8601 duration strings the platform serves,
// e.g. "PT1H2M3S" or "P1DT6H". Only day and smaller designators occur for
// video lengths.
func ParseDuration(s string) (time.Duration, error) {
	if !strings.HasPrefix(s, "P") {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	var d time.Duration
	inTime := false
	num := ""
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
			continue
		case r == 'T':
			inTime = true
			continue
		}

		if num == "" {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		num = ""

		switch {
		case r == 'D' && !inTime:
			d += time.Duration(n) * 24 * time.Hour
		case r == 'H' && inTime:
			d += time.Duration(n) * time.Hour
		case r == 'M' && inTime:
			d += time.Duration(n) * time.Minute
		case r == 'S' && inTime:
			d += time.Duration(n) * time.Second
		default:
			return 0, fmt.Errorf("invalid duration %q: unexpected designator %q", s, r)
		}
	}

	if num != "" {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	return d, nil
}
