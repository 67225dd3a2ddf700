package refdoc

import "strings"

// Section is a contiguous, named run of lines in the reference document,
// opened by a detection-rule match and closed by the next match (or EOF).
type Section struct {
	Name      string // Section name from the rule catalog
	Content   string // Every line from the matching line up to the next match
	StartLine int    // 0-based index of the line that opened the section
	EndLine   int    // 0-based index of the last line belonging to the section
}

// Document is one loaded, parsed reference document. It is rebuilt from the
// backing file on every request and never mutated afterwards.
type Document struct {
	Text     string    // Raw document text
	Lines    []string  // Text split on newlines
	Sections []Section // Parsed sections, ordered by StartLine
}

// New builds a Document from raw text and its parsed sections.
func New(text string, sections []Section) *Document {
	return &Document{
		Text:     text,
		Lines:    strings.Split(text, "\n"),
		Sections: sections,
	}
}

// SectionByName returns the content of the first section with the given name.
// A missing section yields an empty string, never an error.
func (d *Document) SectionByName(name string) string {
	for _, s := range d.Sections {
		if s.Name == name {
			return s.Content
		}
	}
	return ""
}
