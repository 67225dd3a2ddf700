package topics

import (
	"strings"
)

// Topic is a named category of language-feature documentation.
type Topic struct {
	Name        string
	Keywords    []string
	Description string
}

// Help is the sentinel topic identifier for "no topic matched, this is the
// catalog listing" responses. It never appears in Table.
const Help = "help"

// Table is the fixed topic catalog. Order matters twice over: Resolve returns
// the first matching entry, and listings preserve this order. Entries are
// arranged so that no earlier entry's keyword is contained in a later entry's
// name (every topic resolves to itself by name).
var Table = []Topic{
	{
		Name:        "numbers",
		Keywords:    []string{"number", "integer", "float", "frac", "arithmetic", "math"},
		Description: "Numeric literals and arithmetic: integers, hex, fractions, underscores, division.",
	},
	{
		Name:        "string_interpolation",
		Keywords:    []string{"interpolation", "interpolate", "template"},
		Description: "Embedding values inside string literals with ${...}.",
	},
	{
		Name:        "strings",
		Keywords:    []string{"string", "str", "text", "quote", "unicode"},
		Description: "String literals, multiline strings, and common Str operations.",
	},
	{
		Name:        "lists",
		Keywords:    []string{"list", "array", "sequence", "collection"},
		Description: "List literals and transformations: map, keepIf, sum, first.",
	},
	{
		Name:        "records",
		Keywords:    []string{"record", "struct", "field", "object"},
		Description: "Record literals, field access, update syntax, and destructuring.",
	},
	{
		Name:        "tuples",
		Keywords:    []string{"tuple", "pair"},
		Description: "Tuple literals and positional destructuring.",
	},
	{
		Name:        "tags",
		Keywords:    []string{"tag", "union", "variant", "enum"},
		Description: "Tags and tag unions, with and without payloads.",
	},
	{
		Name:        "pattern_matching",
		Keywords:    []string{"pattern", "match", "when", "destructure", "guard"},
		Description: "when/is expressions: alternatives, guards, and catch-all branches.",
	},
	{
		Name:        "conditionals",
		Keywords:    []string{"if", "else", "then", "condition", "branch"},
		Description: "if/then/else expressions and chained branches.",
	},
	{
		Name:        "functions",
		Keywords:    []string{"function", "func", "argument", "parameter", "call"},
		Description: "Defining and calling functions.",
	},
	{
		Name:        "lambdas",
		Keywords:    []string{"lambda", "closure", "anonymous", "arrow"},
		Description: "Anonymous functions and higher-order usage.",
	},
	{
		Name:        "pipelines",
		Keywords:    []string{"pipe", "pipeline", "chain", "compose"},
		Description: "Chaining transformations with the |> operator.",
	},
	{
		Name:        "types",
		Keywords:    []string{"type", "annotation", "alias", "signature", "opaque"},
		Description: "Type aliases for numbers, records, and tag unions.",
	},
	{
		Name:        "error_handling",
		Keywords:    []string{"error", "result", "try", "crash", "exception"},
		Description: "Working with Result values: Ok and Err branches.",
	},
	{
		Name:        "imports",
		Keywords:    []string{"import", "module", "exposing", "package", "dependency"},
		Description: "Importing modules and exposing names.",
	},
	{
		Name:        "testing",
		Keywords:    []string{"test", "expect", "assert", "assertion"},
		Description: "Inline expectations with the expect keyword.",
	},
	{
		Name:        "debugging",
		Keywords:    []string{"debug", "dbg", "inspect", "trace"},
		Description: "Inspecting values during development with dbg.",
	},
}

// Resolve maps a free-text query to a topic name, or "" when nothing matches.
// Matching is exact-substring in both directions (the keyword may contain the
// query or the query may contain the keyword), first match in table order
// wins. A blank query never matches: every keyword contains the empty string,
// so without this guard "" would always resolve to the first entry.
func Resolve(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}
	for _, t := range Table {
		if q == t.Name {
			return t.Name
		}
		for _, kw := range t.Keywords {
			if strings.Contains(q, kw) || strings.Contains(kw, q) {
				return t.Name
			}
		}
	}
	return ""
}

// Get returns the table entry for a topic name.
func Get(name string) (Topic, bool) {
	for _, t := range Table {
		if t.Name == name {
			return t, true
		}
	}
	return Topic{}, false
}

// CatalogText renders the full topic catalog as a bullet listing, used both
// for the listing tool and as the help fallback when no topic matches.
func CatalogText() string {
	var b strings.Builder
	b.WriteString("Available topics:\n")
	for _, t := range Table {
		b.WriteString("- ")
		b.WriteString(t.Name)
		b.WriteString(": ")
		b.WriteString(t.Description)
		b.WriteString("\n")
	}
	return b.String()
}
