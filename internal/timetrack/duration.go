package timetrack

import (
	"math"
	"regexp"
	"strconv"
)

// Minute counts for the two non-minute units a duration token can carry.
const (
	MinutesPerHour     = 60
	MinutesPerPomodoro = 30
)

var durationTokenRe = regexp.MustCompile(`^\d+[mhp]$`)

// looksLikeDurationToken reports whether tok has the shape <digits><unit>
// with unit in {m, h, p}, with no intervening whitespace.
func looksLikeDurationToken(tok string) bool {
	return durationTokenRe.MatchString(tok)
}

// parseDurationToken converts a single duration token (already matched by
// looksLikeDurationToken) into minutes. Overflow at any stage yields
// InvalidTime(tok): the raw token, verbatim.
func parseDurationToken(tok string) (uint32, error) {
	unit := tok[len(tok)-1]
	digits := tok[:len(tok)-1]

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, InvalidTime(tok)
	}

	var mult uint64
	switch unit {
	case 'm':
		mult = 1
	case 'h':
		mult = MinutesPerHour
	case 'p':
		mult = MinutesPerPomodoro
	default:
		return 0, InvalidTime(tok)
	}

	total := n * mult
	if mult != 0 && total/mult != n {
		return 0, InvalidTime(tok) // overflowed uint64 during multiplication
	}
	if total > math.MaxUint32 {
		return 0, InvalidTime(tok)
	}
	return uint32(total), nil
}
