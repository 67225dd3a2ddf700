package topics

import (
	"strings"
	"testing"
)

func TestResolve_SelfNameAlwaysMatches(t *testing.T) {
	// The table is arranged so no earlier entry's keyword is contained in a
	// later entry's name; every topic must resolve to itself by name.
	for _, topic := range Table {
		if got := Resolve(topic.Name); got != topic.Name {
			t.Errorf("Resolve(%q): expected %q, got %q", topic.Name, topic.Name, got)
		}
	}
}

func TestResolve_Keywords(t *testing.T) {
	cases := map[string]string{
		"pattern":          "pattern_matching",
		"pattern matching": "pattern_matching",
		"matching":         "pattern_matching",
		"when":             "pattern_matching",
		"template":         "string_interpolation",
		"string":           "strings",
		"enum":             "tags",
		"module":           "imports",
		"expect":           "testing",
		"dbg":              "debugging",
		"closure":          "lambdas",
		"result":           "error_handling",
		"how do i use records": "records",
	}
	for query, want := range cases {
		if got := Resolve(query); got != want {
			t.Errorf("Resolve(%q): expected %q, got %q", query, want, got)
		}
	}
}

func TestResolve_TableOrderBreaksTies(t *testing.T) {
	// "list of strings" contains keywords of both strings and lists; strings
	// is earlier in the table and must win.
	if got := Resolve("list of strings"); got != "strings" {
		t.Errorf("expected earlier entry %q to win, got %q", "strings", got)
	}
	// "string_interpolation" also contains the strings keyword "string", but
	// the interpolation entry precedes strings and matches by name first.
	if got := Resolve("string_interpolation"); got != "string_interpolation" {
		t.Errorf("expected name match to win over later keyword, got %q", got)
	}
}

func TestResolve_NoMatch(t *testing.T) {
	for _, query := range []string{"", "   ", "xyz-no-such-topic", "zzz"} {
		if got := Resolve(query); got != "" {
			t.Errorf("Resolve(%q): expected no match, got %q", query, got)
		}
	}
}

func TestResolve_IsCaseInsensitive(t *testing.T) {
	if got := Resolve("Pattern Matching"); got != "pattern_matching" {
		t.Errorf("expected %q, got %q", "pattern_matching", got)
	}
}

func TestGet(t *testing.T) {
	topic, ok := Get("records")
	if !ok {
		t.Fatal("expected records topic to exist")
	}
	if topic.Description == "" {
		t.Error("expected a non-empty description")
	}
	if _, ok := Get(Help); ok {
		t.Errorf("sentinel %q must not be a table entry", Help)
	}
}

func TestCatalogText_ListsEveryTopicOnce(t *testing.T) {
	text := CatalogText()
	for _, topic := range Table {
		marker := "- " + topic.Name + ": "
		if strings.Count(text, marker) != 1 {
			t.Errorf("catalog text: expected exactly one entry for %q", topic.Name)
		}
	}
}

func TestTableHasNoDuplicateNames(t *testing.T) {
	seen := map[string]bool{}
	for _, topic := range Table {
		if seen[topic.Name] {
			t.Errorf("duplicate topic name %q", topic.Name)
		}
		seen[topic.Name] = true
	}
	if len(Table) != 17 {
		t.Errorf("expected 17 topics, got %d", len(Table))
	}
}
