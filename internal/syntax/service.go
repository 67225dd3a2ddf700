package syntax

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/codegod100/roc-syntax-mcp/internal/parser"
	"github.com/codegod100/roc-syntax-mcp/internal/refdoc"
	"github.com/codegod100/roc-syntax-mcp/internal/topics"
)

// DefaultReferenceFile is the reference document looked up beside the running
// executable when no explicit path is configured.
const DefaultReferenceFile = "roc_syntax.roc"

// Service answers queries over the Roc syntax reference document. The
// document is re-read on every request; none of the query operations can
// fail — read errors degrade to a sentinel string and unresolvable queries
// degrade to the help listing.
type Service struct {
	path string
	log  *slog.Logger
}

// Result is one answered search query.
type Result struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
	Examples    string `json:"examples"`
}

// TopicInfo is one catalog entry in a topic listing.
type TopicInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Stats summarizes the loaded document and catalog.
type Stats struct {
	ReferencePath  string `json:"reference_path"`
	DocumentBytes  int    `json:"document_bytes"`
	DocumentLines  int    `json:"document_lines"`
	SectionCount   int    `json:"section_count"`
	TopicCount     int    `json:"topic_count"`
	LoadedSentinel bool   `json:"loaded_sentinel"`
}

// New creates a Service reading the given reference path. An empty path
// resolves DefaultReferenceFile relative to the executable's directory.
func New(path string, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	if path == "" {
		path = defaultPath()
	}
	return &Service{path: path, log: log}
}

// Path returns the resolved reference document path.
func (s *Service) Path() string {
	return s.path
}

// Load reads the reference document in full. On any failure it returns a
// sentinel error string in place of the document text so callers can proceed;
// downstream searches over the sentinel simply find nothing.
func (s *Service) Load() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Warn("reference document unavailable", "path", s.path, "error", err)
		return fmt.Sprintf("ERROR: failed to load Roc syntax reference: %v", err)
	}
	return string(data)
}

// FullReference returns the entire reference document verbatim (or the load
// sentinel).
func (s *Service) FullReference() string {
	return s.Load()
}

// Search maps a free-text query to a topic and assembles its examples. A
// query no topic matches yields the help listing tagged with topics.Help
// instead of an error.
func (s *Service) Search(query string) Result {
	name := topics.Resolve(query)
	if name == "" {
		catalog := topics.CatalogText()
		return Result{
			Topic:       topics.Help,
			Description: catalog,
			Examples:    catalog,
		}
	}

	topic, _ := topics.Get(name)
	doc := s.parse(s.Load())
	return Result{
		Topic:       topic.Name,
		Description: topic.Description,
		Examples:    topics.Examples(topic.Name, doc),
	}
}

// Topics lists every catalog entry in table order.
func (s *Service) Topics() []TopicInfo {
	list := make([]TopicInfo, 0, len(topics.Table))
	for _, t := range topics.Table {
		list = append(list, TopicInfo{Name: t.Name, Description: t.Description})
	}
	return list
}

// Snapshot reports document and catalog statistics.
func (s *Service) Snapshot() Stats {
	text := s.Load()
	doc := s.parse(text)
	return Stats{
		ReferencePath:  s.path,
		DocumentBytes:  len(text),
		DocumentLines:  len(doc.Lines),
		SectionCount:   len(doc.Sections),
		TopicCount:     len(topics.Table),
		LoadedSentinel: strings.HasPrefix(text, "ERROR: failed to load"),
	}
}

// parse splits document text into sections using the parser for the
// configured file's format. Parser selection or scan failures degrade to a
// sectionless document; raw-line topics still work over it.
func (s *Service) parse(text string) *refdoc.Document {
	p, err := parser.ForFile(s.path)
	if err != nil {
		p = &parser.RocParser{Rules: parser.Rules}
	}
	sections, err := p.Parse(strings.NewReader(text), filepath.Base(s.path))
	if err != nil {
		s.log.Warn("reference document parse failed", "path", s.path, "error", err)
		sections = nil
	}
	return refdoc.New(text, sections)
}

func defaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultReferenceFile
	}
	return filepath.Join(filepath.Dir(exe), DefaultReferenceFile)
}
