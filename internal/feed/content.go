package feed

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// maxFragments caps collection so malformed input cannot accumulate
	// without bound.
	maxFragments = 15

	// displayLimit is the target content length; minSentenceCut is the
	// earliest acceptable sentence boundary when trimming to it.
	displayLimit   = 65
	minSentenceCut = 40
)

// denyList holds chrome labels and snapshot-specific author strings that
// must never appear in assembled content. Substring match.
var denyList = []string{
	"Visible to anyone",
	"Promote this post",
	"Head of FDE",
	"Premium",
	"see more",
	"Open control menu",
	"Jove Zhong",
	"Activate to view",
	"Brandon Teegen",
	"React Like",
	"Comment",
	"Repost",
	"Send in a",
	"View analytics",
	"This image has",
	"button",
}

var (
	textRe    = regexp.MustCompile(`text: (.+)`)
	hashtagRe = regexp.MustCompile(`link "hashtag ([^"]+)"`)
	linkRe    = regexp.MustCompile(`link "([^"]+)"`)

	spaceRunRe    = regexp.MustCompile(`\s+`)
	spacedPunctRe = regexp.MustCompile(`\s+([.,!?])`)
)

const (
	contentStartMarker = "ago • Visible to anyone"
)

// stopMarkers end content collection: they open the engagement section.
var stopMarkers = []string{"React Like", "impressions View", "strong:"}

// assembleContent collects the visible-content fragments of one segment and
// joins them into a display string. Returns "" when nothing was collected.
func assembleContent(seg string) string {
	var parts []string

	inContent := false
	for _, line := range strings.Split(seg, "\n") {
		if strings.Contains(line, contentStartMarker) {
			inContent = true
			continue
		}
		if !inContent {
			continue
		}
		if containsAny(line, stopMarkers) {
			break
		}

		if m := textRe.FindStringSubmatch(line); m != nil {
			if text, ok := admitText(m[1]); ok {
				parts = append(parts, text)
			}
		}

		if m := hashtagRe.FindStringSubmatch(line); m != nil {
			tag := "#" + m[1]
			if !strings.Contains(strings.Join(parts, " "), tag) {
				parts = append(parts, tag)
			}
		}

		if m := linkRe.FindStringSubmatch(line); m != nil &&
			!strings.Contains(line, `link "hashtag`) && strings.Contains(line, "[ref=") {
			if label := strings.TrimSpace(m[1]); admitLink(label) {
				parts = append(parts, label)
			}
		}

		if len(parts) >= maxFragments {
			break
		}
	}

	if len(parts) == 0 {
		return ""
	}

	joined := strings.Join(parts, " ")
	joined = spaceRunRe.ReplaceAllString(joined, " ")
	joined = spacedPunctRe.ReplaceAllString(joined, "$1")
	joined = strings.TrimSpace(joined)

	return truncateContent(joined)
}

// admitText cleans a plain-text fragment and decides whether to keep it.
// Short fragments pass only when they contain a pictograph.
func admitText(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	text = strings.Trim(text, `"`)
	text = strings.Trim(text, `'`)
	if text == "" || containsAny(text, denyList) {
		return "", false
	}
	if utf8.RuneCountInString(text) > 2 || hasPictograph(text) {
		return text, true
	}
	return "", false
}

// admitLink decides whether a non-hashtag link label counts as content.
// URLs, media placeholders, and action labels do not.
func admitLink(label string) bool {
	if label == "" || strings.HasPrefix(label, "http") {
		return false
	}
	for _, suffix := range []string{"graphic.", "link", "profile"} {
		if strings.HasSuffix(label, suffix) {
			return false
		}
	}
	if strings.Contains(label, "View ") || strings.Contains(label, "Open ") {
		return false
	}
	return utf8.RuneCountInString(label) > 2
}

// hasPictograph reports whether s contains a character in the three code
// point bands used for emoji admission. The bands are a heuristic subset of
// emoji, kept exactly as-is: changing them moves the admission boundary.
func hasPictograph(s string) bool {
	for _, r := range s {
		if (r >= 0x1F300 && r <= 0x1F9FF) ||
			(r >= 0x2600 && r <= 0x27BF) ||
			(r >= 0x1F000 && r <= 0x1F2FF) {
			return true
		}
	}
	return false
}

// truncateContent trims joined content to displayLimit runes, preferring the
// last sentence boundary past minSentenceCut. Without one it hard-cuts and
// appends an ellipsis.
func truncateContent(s string) string {
	runes := []rune(s)
	if len(runes) <= displayLimit {
		return s
	}
	head := runes[:displayLimit]
	for _, punct := range []rune{'.', '!', '?'} {
		if idx := lastSentenceEnd(head, punct); idx > minSentenceCut {
			return string(head[:idx+1])
		}
	}
	return string(head) + "..."
}

// lastSentenceEnd finds the last "<punct><space>" pair in runes, returning
// the punctuation index or -1.
func lastSentenceEnd(runes []rune, punct rune) int {
	for i := len(runes) - 2; i >= 0; i-- {
		if runes[i] == punct && runes[i+1] == ' ' {
			return i
		}
	}
	return -1
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
