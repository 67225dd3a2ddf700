package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/codegod100/roc-syntax-mcp/internal/refdoc"
)

// Rule opens a section named Name at any line starting with Prefix.
type Rule struct {
	Name   string
	Prefix string
}

// Rules is the section catalog for the Roc syntax sample. Order matters: the
// first rule whose prefix matches a line wins, and later rules are never
// tested for that line.
var Rules = []Rule{
	{"module_header", "module ["},
	{"imports", "import "},
	{"main", "main ="},
	{"numbers", "numbersDemo"},
	{"strings", "stringsDemo"},
	{"interpolation", "interpolationDemo"},
	{"lists", "listsDemo"},
	{"records", "recordsDemo"},
	{"tuples", "tuplesDemo"},
	{"tags", "tagsDemo"},
	{"pattern_matching", "whenDemo"},
	{"conditionals", "ifDemo"},
	{"functions", "functionsDemo"},
	{"lambdas", "lambdaDemo"},
	{"pipelines", "pipelineDemo"},
	{"types", "UserId"},
	{"error_handling", "errorDemo"},
	{"debugging", "debugDemo"},
	{"checks", "expect "},
}

// RocParser splits a line-oriented syntax sample into sections using an
// ordered prefix-rule catalog.
type RocParser struct {
	Rules []Rule
}

func (p *RocParser) Parse(r io.Reader, filename string) ([]refdoc.Section, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var sections []refdoc.Section
	var open *refdoc.Section
	line := 0

	for scanner.Scan() {
		text := scanner.Text()
		if name, ok := p.match(text); ok {
			if open != nil {
				sections = append(sections, *open)
			}
			open = &refdoc.Section{
				Name:      name,
				Content:   text,
				StartLine: line,
				EndLine:   line,
			}
		} else if open != nil {
			open.Content += "\n" + text
			open.EndLine = line
		}
		// Lines before the first match belong to no section.
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if open != nil {
		sections = append(sections, *open)
	}

	return sections, nil
}

// match tests a line against the rule catalog in order; the first matching
// rule's name is returned.
func (p *RocParser) match(line string) (string, bool) {
	for _, rule := range p.Rules {
		if strings.HasPrefix(line, rule.Prefix) {
			return rule.Name, true
		}
	}
	return "", false
}
