package ticket

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DefaultNumberPrefix is the prefix of generated ticket numbers.
const DefaultNumberPrefix = "SE"

// NumberGenerator hands out the next ticket number for a year. Implementations
// must never return the same number twice for concurrent callers.
type NumberGenerator interface {
	Next(ctx context.Context, year int) (string, error)
}

// FormatNumber renders <prefix>-<year>-<seq>, padding seq to three digits.
// Sequences above 999 keep all their digits.
func FormatNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

// NumberScope is the counter key shared by every number of a year.
func NumberScope(prefix string, year int) string {
	return fmt.Sprintf("%s-%d", prefix, year)
}

// ParseNumber splits a ticket number into its prefix, year and sequence.
func ParseNumber(number string) (prefix string, year int, seq int64, err error) {
	parts := strings.Split(number, "-")
	if len(parts) != 3 || parts[0] == "" {
		return "", 0, 0, fmt.Errorf("malformed ticket number: %q", number)
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil || year <= 0 {
		return "", 0, 0, fmt.Errorf("malformed ticket number year: %q", number)
	}

	seq, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil || seq <= 0 {
		return "", 0, 0, fmt.Errorf("malformed ticket number sequence: %q", number)
	}

	return parts[0], year, seq, nil
}

// MaxSequence returns the numerically highest sequence among numbers issued
// under prefix for year. Malformed or foreign numbers are ignored.
func MaxSequence(numbers []string, prefix string, year int) int64 {
	var highest int64
	for _, n := range numbers {
		p, y, seq, err := ParseNumber(n)
		if err != nil || p != prefix || y != year {
			continue
		}
		if seq > highest {
			highest = seq
		}
	}
	return highest
}
