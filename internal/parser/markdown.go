package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/codegod100/roc-syntax-mcp/internal/refdoc"
)

// MarkdownParser handles reference documents published as Markdown. Headings
// delimit sections; the heading text, lowercased with spaces collapsed to
// underscores, becomes the section name so the same topic mapping applies.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) ([]refdoc.Section, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var sections []refdoc.Section
	var open *refdoc.Section

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if heading, ok := n.(*ast.Heading); ok {
			if open != nil {
				sections = append(sections, *open)
			}
			title := string(heading.Text(src))
			open = &refdoc.Section{
				Name:      slugify(title),
				Content:   title,
				StartLine: nodeLine(heading, src),
			}
			open.EndLine = open.StartLine
			continue
		}
		if open == nil {
			// Content before the first heading belongs to no section.
			continue
		}
		if t := blockText(n, src); t != "" {
			open.Content += "\n" + t
			open.EndLine = nodeEndLine(n, src, open.EndLine)
		}
	}
	if open != nil {
		sections = append(sections, *open)
	}

	return sections, nil
}

func slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "_")
}

// blockText gets the raw text content of a goldmark block node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	// Container blocks (lists, quotes) carry text on their children.
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() == ast.TypeBlock {
			if t := blockText(c, src); t != "" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
				buf.WriteString(t)
			}
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

// nodeLine converts a node's first source segment to a 0-based line index.
func nodeLine(n ast.Node, src []byte) int {
	lines := n.Lines()
	if lines.Len() == 0 {
		return 0
	}
	return bytes.Count(src[:lines.At(0).Start], []byte("\n"))
}

func nodeEndLine(n ast.Node, src []byte, fallback int) int {
	lines := n.Lines()
	if lines.Len() == 0 {
		return fallback
	}
	last := lines.At(lines.Len() - 1)
	return bytes.Count(src[:last.Stop], []byte("\n"))
}
