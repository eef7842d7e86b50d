package feed

import (
	"regexp"
	"strconv"
)

// headingRe marks the start of a post and captures its ordinal,
// e.g. `- heading "Feed post number 3"` -> 3.
var headingRe = regexp.MustCompile(`- heading "Feed post number (\d+)"`)

// segment is the raw text from one post heading up to the next.
type segment struct {
	num  int
	text string
}

// splitPosts splits a snapshot into per-post segments, in source order.
// A trailing heading with no body after it is dropped.
func splitPosts(snapshot string) []segment {
	matches := headingRe.FindAllStringSubmatchIndex(snapshot, -1)
	segs := make([]segment, 0, len(matches))
	for i, m := range matches {
		num, err := strconv.Atoi(snapshot[m[2]:m[3]])
		if err != nil {
			continue
		}
		end := len(snapshot)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := snapshot[m[1]:end]
		if body == "" {
			continue
		}
		segs = append(segs, segment{num: num, text: body})
	}
	return segs
}
