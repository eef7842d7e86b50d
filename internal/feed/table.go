package feed

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultLimit is how many posts the table shows when the caller does not
// ask for a specific count.
const DefaultLimit = 10

const (
	contentTruncateWidth = 50
	contentColumnWidth   = 45
)

const (
	tableHeader    = "| # | Date | Content | Impressions | Reactions | Comments | Reposts |"
	tableSeparator = "|---|------|---------|-------------|-----------|----------|---------|"
)

// FormatTable renders posts as a pipe-delimited markdown table, sorted by
// ordinal ascending and limited to the first limit entries.
func FormatTable(posts []Post, limit int) string {
	sorted := make([]Post, len(posts))
	copy(sorted, posts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Num < sorted[j].Num })
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	lines := make([]string, 0, len(sorted)+2)
	lines = append(lines, tableHeader, tableSeparator)

	for _, p := range sorted {
		date := "N/A"
		if p.Timestamp != "" {
			date = ResolveDate(p.Timestamp)
		}
		content := p.Content
		if content == "" {
			content = "N/A"
		}
		lines = append(lines, fmt.Sprintf("| %d | %s | %s | %s | %d | %s | %s |",
			p.Num, date, padContent(content), p.Impressions, p.Reactions, p.Comments, p.Reposts))
	}

	return strings.Join(lines, "\n")
}

// padContent truncates content to the display width and pads it so the
// column lines up across rows.
func padContent(s string) string {
	runes := []rune(s)
	if len(runes) > contentTruncateWidth {
		runes = runes[:contentTruncateWidth]
	}
	out := string(runes)
	if n := contentColumnWidth - len(runes); n > 0 {
		out += strings.Repeat(" ", n)
	}
	return out
}
