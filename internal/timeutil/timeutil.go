package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// seasonStartMonth is the month a new NBA season label takes over.
const seasonStartMonth = time.October

var seasonPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// CurrentSeason returns the season label (e.g. "2024-25") in effect at t.
func CurrentSeason(t time.Time) string {
	start := t.Year()
	if t.Month() < seasonStartMonth {
		start--
	}
	return SeasonLabel(start)
}

// SeasonLabel formats the season that starts in the given year.
func SeasonLabel(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// ValidSeason reports whether value is a well-formed season label whose
// second half follows the first (e.g. "1999-00", "2024-25").
func ValidSeason(value string) bool {
	m := seasonPattern.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	end, err := strconv.Atoi(m[2])
	if err != nil {
		return false
	}
	return (start+1)%100 == end
}
