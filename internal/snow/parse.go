package snow

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrTableNotFound means the page loaded but the forecast table is missing,
// usually because the resort page layout changed.
var ErrTableNotFound = errors.New("forecast table not found")

const (
	forecastTableSelector = "table.forecast-table__table--content"
	slotsPerDay           = 3
)

var timesOfDay = [slotsPerDay]string{"AM", "PM", "Night"}

// ParseForecast locates the forecast table and extracts one Slot per column.
// Rows absent from the document yield per-index defaults rather than errors:
// 0.0 cm snow, "?" temperature, "0" freezing level.
func ParseForecast(r io.Reader) ([]Slot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse forecast page: %w", err)
	}

	table := doc.Find(forecastTableSelector).First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	dates := expandDates(table, clock.Now())
	snowCells := rowCells(table, "snow")
	tempCells := firstRowCells(table, "temperature-max", "temp-max", "temp")
	freezeCells := rowCells(table, "freezing-level")

	slots := make([]Slot, 0, len(snowCells))
	for i, cell := range snowCells {
		slots = append(slots, Slot{
			Date:   cellAt(dates, i, "Soon"),
			Time:   timesOfDay[i%slotsPerDay],
			SnowCM: parseSnowDepth(cell),
			Temp:   cellAt(tempCells, i, "?"),
			Freeze: cellAt(freezeCells, i, "0"),
		})
	}
	return slots, nil
}

// expandDates builds the per-column date label sequence from the days header
// row. A date cell spanning N columns contributes N copies of its label, so
// every time-slot column inherits its day's date.
func expandDates(table *goquery.Selection, today time.Time) []string {
	var dates []string
	col := 0
	table.Find(`tr[data-row="days"] td`).Each(func(i int, td *goquery.Selection) {
		if i == 0 {
			return // row label
		}
		span := 1
		if v, ok := td.Attr("colspan"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				span = n
			}
		}
		d := today.AddDate(0, 0, col/slotsPerDay)
		label := fmt.Sprintf("%d/%d(%s)", int(d.Month()), d.Day(), d.Weekday().String()[:3])
		for j := 0; j < span; j++ {
			dates = append(dates, label)
		}
		col += span
	})
	return dates
}

// rowCells returns the trimmed cell texts of the named data row, first cell
// (the row label) discarded. A missing row yields nil.
func rowCells(table *goquery.Selection, name string) []string {
	row := table.Find(fmt.Sprintf(`tr[data-row=%q]`, name)).First()
	if row.Length() == 0 {
		return nil
	}
	var cells []string
	row.Find("td").Each(func(i int, td *goquery.Selection) {
		if i == 0 {
			return
		}
		cells = append(cells, strings.TrimSpace(td.Text()))
	})
	return cells
}

// firstRowCells tries row names in order and returns the first that produced
// cells. The temperature row name has varied across page revisions.
func firstRowCells(table *goquery.Selection, names ...string) []string {
	for _, name := range names {
		if cells := rowCells(table, name); len(cells) > 0 {
			return cells
		}
	}
	return nil
}

// parseSnowDepth reads a snowfall amount from a rendered cell, keeping only
// digits and the decimal point. Anything unparsable counts as no snow.
func parseSnowDepth(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

func cellAt(cells []string, i int, def string) string {
	if i < len(cells) {
		return cells[i]
	}
	return def
}
