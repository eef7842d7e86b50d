package feed

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// wrapContent builds a minimal segment around content lines so assembly
// starts and stops where it would in a real snapshot.
func wrapContent(lines ...string) string {
	all := append([]string{"- text: 1 hour ago • Visible to anyone on LinkedIn"}, lines...)
	all = append(all, "- text: React Like")
	return strings.Join(all, "\n")
}

func TestAssembleContent(t *testing.T) {
	t.Run("collects only between start and stop markers", func(t *testing.T) {
		seg := "- text: before the marker\n" + wrapContent(
			"- text: Inside the content region.",
		) + "\n- text: after the stop marker"
		assert.Equal(t, "Inside the content region.", assembleContent(seg))
	})

	t.Run("deny list filters chrome labels", func(t *testing.T) {
		got := assembleContent(wrapContent(
			"- text: Promote this post to reach more people",
			"- text: Real content survives.",
			"- text: View analytics for this post",
		))
		assert.Equal(t, "Real content survives.", got)
	})

	t.Run("short fragments need a pictograph", func(t *testing.T) {
		got := assembleContent(wrapContent(
			`- text: "🔥"`,
			"- text: ok",
			"- text: Fine either way.",
		))
		assert.Equal(t, "🔥 Fine either way.", got, `"ok" is two plain characters and must be rejected`)
	})

	t.Run("hashtags deduplicate against assembled text", func(t *testing.T) {
		got := assembleContent(wrapContent(
			"- text: Loving #ai these days",
			`- link "hashtag ai" [ref=s1]`,
			`- link "hashtag golang" [ref=s2]`,
		))
		assert.Equal(t, "Loving #ai these days #golang", got)
	})

	t.Run("link labels filtered by shape", func(t *testing.T) {
		got := assembleContent(wrapContent(
			`- link "Acme Robotics" [ref=s3]`,
			`- link "https://example.com/x" [ref=s4]`,
			`- link "View analytics" [ref=s5]`,
			`- link "team photo graphic." [ref=s6]`,
			`- link "no ref attribute here"`,
		))
		assert.Equal(t, "Acme Robotics", got)
	})

	t.Run("fragment cap stops collection at fifteen", func(t *testing.T) {
		var lines []string
		for i := 1; i <= 20; i++ {
			lines = append(lines, fmt.Sprintf("- text: w%02d", i))
		}
		got := assembleContent(wrapContent(lines...))
		assert.Contains(t, got, "w15")
		assert.NotContains(t, got, "w16")
	})

	t.Run("whitespace collapsed and punctuation tightened", func(t *testing.T) {
		got := assembleContent(wrapContent(
			"- text: Big   news",
			"- text: , everyone !",
		))
		assert.Equal(t, "Big news, everyone!", got)
	})

	t.Run("empty region yields empty content", func(t *testing.T) {
		assert.Empty(t, assembleContent(wrapContent()))
	})
}

func TestTruncateContent(t *testing.T) {
	t.Run("short content untouched", func(t *testing.T) {
		assert.Equal(t, "short", truncateContent("short"))
	})

	t.Run("cuts at last sentence boundary past the minimum", func(t *testing.T) {
		s := strings.Repeat("a", 50) + ". " + strings.Repeat("b", 28)
		assert.Equal(t, strings.Repeat("a", 50)+".", truncateContent(s))
	})

	t.Run("early boundary ignored", func(t *testing.T) {
		s := strings.Repeat("a", 30) + ". " + strings.Repeat("b", 48)
		want := (strings.Repeat("a", 30) + ". " + strings.Repeat("b", 48))[:65] + "..."
		assert.Equal(t, want, truncateContent(s))
	})

	t.Run("no boundary hard-truncates with ellipsis", func(t *testing.T) {
		s := strings.Repeat("a", 80)
		assert.Equal(t, strings.Repeat("a", 65)+"...", truncateContent(s))
	})

	t.Run("question and exclamation boundaries count", func(t *testing.T) {
		s := strings.Repeat("a", 45) + "! " + strings.Repeat("b", 33)
		assert.Equal(t, strings.Repeat("a", 45)+"!", truncateContent(s))
	})
}
