package parser

import (
	"os"
	"strings"
	"testing"
)

func TestRocParser_SyntheticDocument(t *testing.T) {
	input := "junk\nfoo:\na\nb\nbar=\nc"
	p := &RocParser{Rules: []Rule{
		{"foo", "foo:"},
		{"bar", "bar="},
	}}

	sections, err := p.Parse(strings.NewReader(input), "sample.roc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}

	foo := sections[0]
	if foo.Name != "foo" {
		t.Errorf("expected section %q, got %q", "foo", foo.Name)
	}
	if foo.Content != "foo:\na\nb" {
		t.Errorf("foo content: expected %q, got %q", "foo:\na\nb", foo.Content)
	}
	if foo.StartLine != 1 || foo.EndLine != 3 {
		t.Errorf("foo lines: expected 1-3, got %d-%d", foo.StartLine, foo.EndLine)
	}

	bar := sections[1]
	if bar.Name != "bar" {
		t.Errorf("expected section %q, got %q", "bar", bar.Name)
	}
	if bar.Content != "bar=\nc" {
		t.Errorf("bar content: expected %q, got %q", "bar=\nc", bar.Content)
	}
	if bar.StartLine != 4 || bar.EndLine != 5 {
		t.Errorf("bar lines: expected 4-5, got %d-%d", bar.StartLine, bar.EndLine)
	}
}

func TestRocParser_LinesBeforeFirstMatchAreDropped(t *testing.T) {
	input := "preamble one\npreamble two\nfoo: header"
	p := &RocParser{Rules: []Rule{{"foo", "foo:"}}}

	sections, err := p.Parse(strings.NewReader(input), "sample.roc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if strings.Contains(sections[0].Content, "preamble") {
		t.Errorf("pre-match lines leaked into section content: %q", sections[0].Content)
	}
}

func TestRocParser_BackToBackHeaders(t *testing.T) {
	// A rule line always opens a new section, even with no content lines in
	// between: each becomes a one-line section.
	input := "import a\nimport b\nimport c"
	p := &RocParser{Rules: []Rule{{"imports", "import "}}}

	sections, err := p.Parse(strings.NewReader(input), "sample.roc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	for i, s := range sections {
		if s.Name != "imports" {
			t.Errorf("section %d: expected name %q, got %q", i, "imports", s.Name)
		}
		if s.StartLine != i || s.EndLine != i {
			t.Errorf("section %d: expected lines %d-%d, got %d-%d", i, i, i, s.StartLine, s.EndLine)
		}
		if strings.Count(s.Content, "\n") != 0 {
			t.Errorf("section %d: expected single-line content, got %q", i, s.Content)
		}
	}
}

func TestRocParser_FirstRuleWins(t *testing.T) {
	// "xy" textually matches both prefixes; only the first rule in catalog
	// order applies.
	p := &RocParser{Rules: []Rule{
		{"short", "x"},
		{"long", "xy"},
	}}

	sections, err := p.Parse(strings.NewReader("xyz"), "sample.roc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Name != "short" {
		t.Errorf("expected first rule to win, got section %q", sections[0].Name)
	}
}

func TestRocParser_OpenSectionClosedAtEOF(t *testing.T) {
	input := "foo:\ntrailing content"
	p := &RocParser{Rules: []Rule{{"foo", "foo:"}}}

	sections, err := p.Parse(strings.NewReader(input), "sample.roc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if !strings.Contains(sections[0].Content, "trailing content") {
		t.Errorf("expected EOF to close the open section, got %q", sections[0].Content)
	}
}

func TestRocParser_ShippedReferenceCoversCatalog(t *testing.T) {
	data, err := os.ReadFile("../../roc_syntax.roc")
	if err != nil {
		t.Fatalf("read shipped reference: %v", err)
	}

	p := &RocParser{Rules: Rules}
	sections, err := p.Parse(strings.NewReader(string(data)), "roc_syntax.roc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[string]bool{}
	for _, s := range sections {
		seen[s.Name] = true
	}
	for _, rule := range Rules {
		if !seen[rule.Name] {
			t.Errorf("shipped reference has no section for rule %q", rule.Name)
		}
	}

	// Sections are non-overlapping and ordered by start line.
	for i := 1; i < len(sections); i++ {
		if sections[i].StartLine <= sections[i-1].EndLine {
			t.Errorf("section %q (start %d) overlaps %q (end %d)",
				sections[i].Name, sections[i].StartLine,
				sections[i-1].Name, sections[i-1].EndLine)
		}
	}
}

func TestForFile_Dispatch(t *testing.T) {
	cases := []struct {
		filename string
		wantErr  bool
	}{
		{"roc_syntax.roc", false},
		{"notes.txt", false},
		{"guide.md", false},
		{"guide.html", false},
		{"report.pdf", true},
	}
	for _, tc := range cases {
		p, err := ForFile(tc.filename)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got parser %T", tc.filename, p)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.filename, err)
		}
	}
}
