// Package fs provides file-based storage for extracted documentation.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// CombinedFilename is the single-file rendition written next to the
// per-section files.
const CombinedFilename = "llms-full.md"

// Writer persists extractions as a directory of markdown files with
// atomic update semantics: files land in a temporary sibling directory
// that replaces the final directory only once everything is written, so
// a failed extraction never leaves a half-written tree behind.
type Writer struct {
	baseDir string
	now     func() time.Time
}

// NewWriter creates a Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, now: time.Now}
}

// WriteExtraction writes one extraction under baseDir/name: one file
// per segmented document plus the combined rendition. An existing
// directory of the same name is replaced atomically.
func (w *Writer) WriteExtraction(name string, ex *llmsdocs.Extraction) error {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return llmsdocs.Errorf(llmsdocs.EINVALID, "invalid extraction name %q", name)
	}
	if ex == nil || len(ex.Documents) == 0 {
		return llmsdocs.Errorf(llmsdocs.EINVALID, "extraction with documents required")
	}

	tempDir := filepath.Join(w.baseDir, name+".tmp")
	finalDir := filepath.Join(w.baseDir, name)

	if err := os.RemoveAll(tempDir); err != nil {
		return err
	}
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return err
	}

	for _, doc := range ex.Documents {
		content := FormatDocument(doc, w.now())
		if err := os.WriteFile(filepath.Join(tempDir, doc.Filename), []byte(content), 0644); err != nil {
			os.RemoveAll(tempDir)
			return err
		}
	}

	combined := FormatCombined(ex, w.now())
	if err := os.WriteFile(filepath.Join(tempDir, CombinedFilename), []byte(combined), 0644); err != nil {
		os.RemoveAll(tempDir)
		return err
	}

	if err := os.RemoveAll(finalDir); err != nil {
		os.RemoveAll(tempDir)
		return err
	}
	return os.Rename(tempDir, finalDir)
}

// FormatDocument formats one section with YAML frontmatter.
func FormatDocument(doc *llmsdocs.Document, extracted time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "source: %s\n", doc.SourceURL)
	fmt.Fprintf(&b, "title: %s\n", doc.Title)
	fmt.Fprintf(&b, "hash: %s\n", doc.ContentHash)
	fmt.Fprintf(&b, "tokens: %d\n", doc.TokenEstimate)
	fmt.Fprintf(&b, "extracted: %s\n", extracted.Format("2006-01-02"))
	b.WriteString("---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// FormatCombined formats the combined rendition with YAML frontmatter.
func FormatCombined(ex *llmsdocs.Extraction, extracted time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "source: %s\n", ex.SourceURL)
	fmt.Fprintf(&b, "contentType: %s\n", ex.ContentType)
	fmt.Fprintf(&b, "sections: %d\n", len(ex.Documents))
	fmt.Fprintf(&b, "tokens: %d\n", ex.TotalTokens)
	fmt.Fprintf(&b, "extracted: %s\n", extracted.Format("2006-01-02"))
	b.WriteString("---\n\n")
	b.WriteString(ex.Combined)
	return b.String()
}
