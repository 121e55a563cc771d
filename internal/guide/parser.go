package guide

import (
	"regexp"
	"strings"
)

// headingRe matches a section heading: three hashes at line start, then the
// title on the rest of the line.
var headingRe = regexp.MustCompile(`(?m)^###[ \t]+(.*)$`)

// itemRe matches a numbered list entry on a single line. The number itself is
// discarded, only match order matters.
var itemRe = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+(.*)$`)

// Parse converts raw model output into a Document. The input is untrusted and
// frequently deviates from the requested layout, so the parser never fails:
// malformed pieces are skipped and the worst case is an empty document.
//
// Rules:
//   - text before the first heading is ignored;
//   - only lines shaped like "N. content" inside a section body become items;
//   - item content splits on the first pipe into name | description, both
//     trimmed; with no pipe the whole line is the name and the description is
//     the NoDescription placeholder;
//   - items whose name trims to empty are dropped;
//   - sections that end up with no items are dropped.
func Parse(raw string) *Document {
	doc := NewDocument()
	headings := headingRe.FindAllStringSubmatchIndex(raw, -1)
	for i, h := range headings {
		title := strings.TrimSpace(raw[h[2]:h[3]])
		bodyStart := h[1]
		bodyEnd := len(raw)
		if i+1 < len(headings) {
			bodyEnd = headings[i+1][0]
		}
		items := parseItems(raw[bodyStart:bodyEnd])
		if len(items) > 0 {
			doc.Set(title, items)
		}
	}
	return doc
}

func parseItems(body string) []Item {
	var items []Item
	for _, m := range itemRe.FindAllStringSubmatch(body, -1) {
		content := m[1]
		name, desc, hasPipe := strings.Cut(content, "|")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !hasPipe {
			desc = NoDescription
		} else {
			desc = strings.TrimSpace(desc)
		}
		items = append(items, Item{Name: name, Description: desc})
	}
	return items
}
