package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/codegod100/roc-syntax-mcp/internal/refdoc"
)

// HTMLParser handles reference documents published as HTML. Heading tags
// (h1-h6) delimit sections, named like the Markdown parser names them.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) ([]refdoc.Section, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var sections []refdoc.Section
	var open *refdoc.Section

	appendText := func(t string) {
		if open == nil || t == "" {
			return
		}
		open.Content += "\n" + t
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if headingLevel(n.Data) > 0 {
				if open != nil {
					sections = append(sections, *open)
				}
				title := textContent(n)
				open = &refdoc.Section{
					Name:    slugify(title),
					Content: title,
				}
				return
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote", "pre":
				appendText(textContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	body := findBody(doc)
	if body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	if open != nil {
		sections = append(sections, *open)
	}

	// The HTML source has no meaningful line mapping after parsing; give
	// sections sequential positions so ordering invariants still hold.
	for i := range sections {
		sections[i].StartLine = i
		sections[i].EndLine = i
	}

	return sections, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
