package topics

import (
	"strings"

	"github.com/codegod100/roc-syntax-mcp/internal/refdoc"
)

// separator joins example blocks in the assembled payload.
const separator = "\n\n---\n\n"

// interpolationExtra is a supplementary illustration appended to the
// string_interpolation examples; it is not present in any parsed section.
const interpolationExtra = "name = \"World\"\ngreeting = \"Hello, ${name}!\""

// selectorFunc produces the raw example blocks for one topic. Blocks may be
// empty; Examples filters those out.
type selectorFunc func(doc *refdoc.Document) []string

// selectors is the per-topic assembly strategy table. Most topics read one or
// two named sections; imports and testing filter raw lines instead, and
// string_interpolation appends a fixed literal.
var selectors = map[string]selectorFunc{
	"numbers":              sectionSelector("numbers"),
	"string_interpolation": withExtra(sectionSelector("interpolation"), interpolationExtra),
	"strings":              sectionSelector("strings"),
	"lists":                sectionSelector("lists"),
	"records":              sectionSelector("records"),
	"tuples":               sectionSelector("tuples"),
	"tags":                 sectionSelector("tags"),
	"pattern_matching":     sectionSelector("pattern_matching"),
	"conditionals":         sectionSelector("conditionals"),
	"functions":            sectionSelector("functions", "lambdas"),
	"lambdas":              sectionSelector("lambdas"),
	"pipelines":            sectionSelector("pipelines"),
	"types":                sectionSelector("types"),
	"error_handling":       sectionSelector("error_handling"),
	"imports":              linePrefixSelector("import "),
	"testing":              lineContainsSelector("expect"),
	"debugging":            sectionSelector("debugging"),
}

// Examples assembles the examples payload for a resolved topic. Unknown
// topics and missing sections degrade to an empty payload, never an error.
func Examples(topicName string, doc *refdoc.Document) string {
	sel, ok := selectors[topicName]
	if !ok {
		return ""
	}
	var blocks []string
	for _, b := range sel(doc) {
		b = strings.TrimSpace(b)
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return strings.Join(blocks, separator)
}

func sectionSelector(names ...string) selectorFunc {
	return func(doc *refdoc.Document) []string {
		blocks := make([]string, 0, len(names))
		for _, name := range names {
			blocks = append(blocks, doc.SectionByName(name))
		}
		return blocks
	}
}

func linePrefixSelector(prefix string) selectorFunc {
	return func(doc *refdoc.Document) []string {
		var lines []string
		for _, line := range doc.Lines {
			if strings.HasPrefix(line, prefix) {
				lines = append(lines, line)
			}
		}
		return []string{strings.Join(lines, "\n")}
	}
}

func lineContainsSelector(marker string) selectorFunc {
	return func(doc *refdoc.Document) []string {
		var lines []string
		for _, line := range doc.Lines {
			if strings.Contains(line, marker) {
				lines = append(lines, line)
			}
		}
		return []string{strings.Join(lines, "\n")}
	}
}

func withExtra(sel selectorFunc, extra string) selectorFunc {
	return func(doc *refdoc.Document) []string {
		return append(sel(doc), extra)
	}
}
