package feed

// Post holds the engagement metrics recovered from one feed post segment.
// Counts that the snapshot renders as text stay strings; only values the
// extractor derives arithmetically are numeric.
type Post struct {
	Num         int
	Timestamp   string // raw relative phrase, e.g. "3 hours ago"
	Impressions string // digits and commas as rendered, e.g. "1,204"
	Reactions   int
	Comments    string
	Reposts     string
	Content     string
}

// accepted reports whether the post carries the two required fields.
// Segments missing either are chrome or partially rendered posts.
func (p Post) accepted() bool {
	return p.Timestamp != "" && p.Impressions != ""
}

// ExtractPosts parses a full snapshot into the retained posts, in source order.
func ExtractPosts(snapshot string) []Post {
	var posts []Post
	for _, seg := range splitPosts(snapshot) {
		p := extractFields(seg)
		if p.accepted() {
			posts = append(posts, p)
		}
	}
	return posts
}
