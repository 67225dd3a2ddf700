package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/codegod100/roc-syntax-mcp/internal/refdoc"
)

// Parser splits a reference document into named sections.
type Parser interface {
	Parse(r io.Reader, filename string) ([]refdoc.Section, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".roc":      true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".roc", ".txt":
		return &RocParser{Rules: Rules}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
