// Package snow parses resort snow-forecast pages and composes powder alerts.
//
// The forecast page renders a six-day table with three columns per day
// (AM, PM, Night). The days header row uses colspan to stretch one date
// cell over its time-slot columns; data rows carry one cell per column with
// the row label in the first cell. Slots are rebuilt fresh on every run and
// never persisted.
package snow

// Slot is one forecast column: a date and time-of-day with its snowfall,
// temperature, and freezing-level readings. Temperature and freezing level
// stay raw strings as rendered by the page.
type Slot struct {
	Date   string
	Time   string
	SnowCM float64
	Temp   string
	Freeze string
}
