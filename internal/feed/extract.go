package feed

import (
	"regexp"
	"strconv"
)

// Field patterns. Each is an independent single-shot search over a post
// segment; a miss leaves the field at its default.
var (
	// timestampRe matches the relative post age, e.g. "text: 5 hours ago".
	timestampRe = regexp.MustCompile(`text: (\d+ (?:hour|hours|day|days|week|weeks|month|months) ago)`)

	// impressionsRe matches the impression counter, e.g. "strong: 1,204 impressions".
	impressionsRe = regexp.MustCompile(`strong: ([\d,]+) impressions`)

	// reactionsRe matches the reactor summary "X and N others". The visible
	// reactor plus N others makes the true total N+1.
	reactionsRe = regexp.MustCompile(`and (\d+) others`)

	commentsRe = regexp.MustCompile(`button "(\d+) comments? on`)
	repostsRe  = regexp.MustCompile(`button "(\d+) reposts? of`)
)

// findGroup runs a single-shot pattern search, returning the first capture
// group and whether it matched.
func findGroup(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// extractFields applies every field rule to one segment. The rules are
// order-independent and side-effect free; each may fail without affecting
// the others.
func extractFields(seg segment) Post {
	p := Post{Num: seg.num, Comments: "0", Reposts: "0"}

	if v, ok := findGroup(timestampRe, seg.text); ok {
		p.Timestamp = v
	}
	if v, ok := findGroup(impressionsRe, seg.text); ok {
		p.Impressions = v
	}
	if v, ok := findGroup(reactionsRe, seg.text); ok {
		if n, err := strconv.Atoi(v); err == nil {
			p.Reactions = n + 1
		}
	}
	if v, ok := findGroup(commentsRe, seg.text); ok {
		p.Comments = v
	}
	if v, ok := findGroup(repostsRe, seg.text); ok {
		p.Reposts = v
	}

	p.Content = assembleContent(seg.text)
	return p
}
