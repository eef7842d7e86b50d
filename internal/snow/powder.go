package snow

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultThresholdCM is the snowfall at which a slot qualifies for a
	// powder alert.
	DefaultThresholdCM = 3.0

	// epicThresholdCM upgrades the severity qualifier.
	epicThresholdCM = 15.0

	// coldFreezingLevelM adds the +Cold qualifier when the freezing level
	// sits below it, meaning the snow should stay dry.
	coldFreezingLevelM = 1000

	// maxReportSlots caps how many qualifying slots one message lists.
	maxReportSlots = 4
)

// noPowderMessage is a valid terminal state, not an error.
const noPowderMessage = "Grouse: No powder expected."

// FilterPowder returns the slots meeting the snowfall threshold, preserving
// chronological order.
func FilterPowder(slots []Slot, thresholdCM float64) []Slot {
	var powder []Slot
	for _, s := range slots {
		if s.SnowCM >= thresholdCM {
			powder = append(powder, s)
		}
	}
	return powder
}

// ComposeReport filters slots against the threshold and builds the alert
// message. The deepest qualifying slot gets a best marker; ties all get it.
func ComposeReport(slots []Slot, thresholdCM float64) string {
	powder := FilterPowder(slots, thresholdCM)
	if len(powder) == 0 {
		return noPowderMessage
	}

	maxSnow := powder[0].SnowCM
	for _, s := range powder[1:] {
		if s.SnowCM > maxSnow {
			maxSnow = s.SnowCM
		}
	}

	if len(powder) > maxReportSlots {
		powder = powder[:maxReportSlots]
	}

	var b strings.Builder
	b.WriteString("❄️Grouse Powder❄️\n")
	for _, s := range powder {
		best := ""
		if s.SnowCM == maxSnow {
			best = "🤩"
		}
		fmt.Fprintf(&b, "%s %s%s: %dcm %s %sC\n",
			s.Date, s.Time, best, int(s.SnowCM), qualifier(s), s.Temp)
	}
	return strings.TrimSpace(b.String())
}

// qualifier derives the severity label for one slot.
func qualifier(s Slot) string {
	q := "Fresh"
	if s.SnowCM >= epicThresholdCM {
		q = "Epic"
	}
	if lvl, ok := freezingLevel(s.Freeze); ok && lvl < coldFreezingLevelM {
		q += "+Cold"
	}
	return q
}

// freezingLevel reads the integer metres out of a rendered freezing-level
// cell, ignoring units and separators. Reports false when no digits exist.
func freezingLevel(s string) (int, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}
