// Package feed extracts post engagement metrics from accessibility-tree
// text snapshots of a LinkedIn feed.
//
// # Snapshot Format
//
// A snapshot is the rendered accessibility tree of a feed page, one node
// per line. The lines relevant to extraction look like:
//
//	- heading "Feed post number 3"        post boundary, ordinal captured
//	- text: 5 hours ago                   relative timestamp
//	- text: Shipping a new release today  visible post content
//	- link "hashtag golang" [ref=s42]     hashtag rendered as a link
//	- strong: 1,204 impressions           impression counter
//	- text: Jane Doe and 41 others        reactions ("and N others" means N+1 total)
//	- button "7 comments on ..."          comment counter
//	- button "2 reposts of ..."           repost counter
//
// Everything between one "Feed post number" heading and the next belongs to
// that post; field searches never cross that boundary.
//
// # Extraction Model
//
// Each field is recovered by an independent single-shot pattern search over
// the post segment. A miss leaves the field at its documented default and is
// never an error. A post is only retained when both the timestamp and the
// impression count were found; anything else is UI chrome or a partially
// rendered post and is dropped.
//
// Visible content is assembled line by line between the "Visible to anyone"
// marker and the engagement section, filtered against a deny-list of known
// chrome labels. Fragments of one or two characters are kept only when they
// contain a pictograph; the three code point bands checked are a heuristic
// subset of emoji, preserved as-is because the admission boundary is part of
// the observable output.
package feed
