package models

import "strings"

// Sessions can reference intercession requests only through a text
// convention in Notes: the free-form text, then a marker line, then one
// request title per line prefixed with "- ". There is no foreign key; the
// titles are a snapshot, not a live link.
const intercessionMarker = "\n\nIntercessions:\n"

// JoinNotes appends the intercession block to the free-form notes. With no
// titles it returns the notes unchanged.
func JoinNotes(notes string, requestTitles []string) string {
	if len(requestTitles) == 0 {
		return notes
	}
	var b strings.Builder
	b.WriteString(notes)
	b.WriteString(intercessionMarker)
	for i, title := range requestTitles {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(title)
	}
	return b.String()
}

// SplitNotes separates the free-form notes from the intercession titles.
// Notes without a marker come back whole with no titles.
func SplitNotes(notes string) (string, []string) {
	before, after, found := strings.Cut(notes, intercessionMarker)
	if !found {
		return notes, nil
	}
	var titles []string
	for _, line := range strings.Split(after, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "- "))
		if line != "" {
			titles = append(titles, line)
		}
	}
	return before, titles
}
