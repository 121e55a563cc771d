package guide

import (
	"fmt"
	"strings"
)

// FormatText renders a document as a plain-text travel guide suitable for
// download. Layout: a title line, then one block per section with the heading
// followed by numbered item names, each with its description indented on the
// next line. Purely deterministic; not meant to be re-parseable.
func FormatText(doc *Document, place string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Travel Guide: %s\n", place)
	for _, sec := range doc.Sections() {
		b.WriteString("\n")
		b.WriteString(sec.Title)
		b.WriteString("\n")
		for i, it := range sec.Items {
			fmt.Fprintf(&b, "%d. %s\n", i+1, it.Name)
			desc := it.Description
			if desc == NoDescription {
				desc = "(no description provided)"
			}
			if desc != "" {
				fmt.Fprintf(&b, "   %s\n", desc)
			}
		}
	}
	return b.String()
}
