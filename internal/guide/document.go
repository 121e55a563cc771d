package guide

// NoDescription is the placeholder stored when an item line carried no pipe
// separator at all. It lets the renderer tell "the model skipped the format"
// apart from an explicit trailing pipe with nothing after it (which yields
// an empty description).
const NoDescription = "…"

// Item is one named entry within a guide section, e.g. one attraction or
// one dish.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HasDescription reports whether the model supplied a description separator
// for this item.
func (it Item) HasDescription() bool {
	return it.Description != NoDescription
}

// Document is an ordered mapping from section title to items, built from one
// raw guide text. Titles keep the position of their first occurrence; if the
// same title appears again, the later occurrence's items replace the earlier
// ones.
type Document struct {
	titles   []string
	sections map[string][]Item
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{sections: make(map[string][]Item)}
}

// Set stores items under title, preserving first-insertion order for the
// title itself.
func (d *Document) Set(title string, items []Item) {
	if _, exists := d.sections[title]; !exists {
		d.titles = append(d.titles, title)
	}
	d.sections[title] = items
}

// Items returns the items stored under title, or nil if the title is absent.
func (d *Document) Items(title string) []Item {
	return d.sections[title]
}

// Titles returns the section titles in display order.
func (d *Document) Titles() []string {
	return d.titles
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.titles)
}

// Empty reports whether the document holds no sections. The caller uses this
// to tell an unusable model response apart from a transport failure.
func (d *Document) Empty() bool {
	return len(d.titles) == 0
}

// Section pairs a title with its items, for templates and JSON responses.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Sections returns the document as an ordered slice.
func (d *Document) Sections() []Section {
	out := make([]Section, 0, len(d.titles))
	for _, t := range d.titles {
		out = append(out, Section{Title: t, Items: d.sections[t]})
	}
	return out
}
