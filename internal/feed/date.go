package feed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var numberRe = regexp.MustCompile(`(\d+)`)

// ResolveDate converts a relative timestamp phrase into a display date,
// using the package clock as the reference instant.
func ResolveDate(phrase string) string {
	return resolveDateAt(phrase, clock.Now())
}

// resolveDateAt applies the precision policy: hours and days convert to an
// absolute calendar date; weeks and months stay relative because the source
// only exposes day-level precision there, and converting would fabricate
// accuracy the snapshot does not have.
func resolveDateAt(phrase string, ref time.Time) string {
	m := numberRe.FindStringSubmatch(phrase)
	if m == nil {
		return "N/A"
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "N/A"
	}

	switch {
	case strings.Contains(phrase, "hour"):
		return ref.Add(-time.Duration(n) * time.Hour).Format("2006-01-02")
	case strings.Contains(phrase, "day"):
		return ref.AddDate(0, 0, -n).Format("2006-01-02")
	case strings.Contains(phrase, "week"):
		return fmt.Sprintf("%dw ago", n)
	case strings.Contains(phrase, "month"):
		return fmt.Sprintf("%dmo ago", n)
	}
	return "N/A"
}
