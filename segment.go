package llmsdocs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// minChunkLength filters out trivial chunks after trimming.
	minChunkLength = 20

	// maxSlugLength bounds slug size in generated filenames.
	maxSlugLength = 50
)

// SegmentContent splits raw llms.txt content into per-section documents
// on top-level "## " header boundaries. The text before the first "## "
// is always an "Introduction" section, even without a header. Chunks
// shorter than 20 characters after trimming are skipped. If nothing
// survives but the source text is non-trivial, the whole text becomes
// one fallback document titled "Documentation".
func SegmentContent(raw string) []*Document {
	var docs []*Document

	for _, chunk := range splitChunks(raw) {
		if len(strings.TrimSpace(chunk)) < minChunkLength {
			continue
		}
		docs = append(docs, chunkDocument(chunk, len(docs) == 0 && !strings.HasPrefix(chunk, "## ")))
	}

	if len(docs) == 0 && len(strings.TrimSpace(raw)) >= minChunkLength {
		docs = append(docs, &Document{
			Title:   "Documentation",
			Content: raw,
		})
	}

	finishDocuments(docs)
	return docs
}

// splitChunks splits text at every top-level "## " line. The leading
// chunk (before any header) is included even when empty; the caller
// filters trivial chunks.
func splitChunks(raw string) []string {
	lines := strings.Split(raw, "\n")
	var chunks []string
	var current []string

	for _, line := range lines {
		if strings.HasPrefix(line, "## ") {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = []string{line}
			continue
		}
		current = append(current, line)
	}
	chunks = append(chunks, strings.Join(current, "\n"))
	return chunks
}

// chunkDocument builds one document from a chunk. The introduction
// chunk keeps its content verbatim; header chunks take the header line
// as title and re-prefix it with "## " in the stored content.
func chunkDocument(chunk string, intro bool) *Document {
	if intro {
		return &Document{
			Title:   "Introduction",
			Content: chunk,
		}
	}

	lines := strings.SplitN(chunk, "\n", 2)
	title := strings.TrimSpace(strings.TrimPrefix(lines[0], "## "))
	body := ""
	if len(lines) > 1 {
		body = lines[1]
	}
	return &Document{
		Title:   title,
		Content: "## " + title + "\n" + body,
	}
}

// finishDocuments assigns filenames, token estimates, and content
// hashes. Filenames are "{2-digit index}-{slug}.md"; the monotonic
// index prefix guarantees uniqueness within one extraction. Exposed to
// the extraction pipeline via AssignFilenames so merged sibling
// documents renumber consistently.
func finishDocuments(docs []*Document) {
	AssignFilenames(docs)
	for _, d := range docs {
		d.TokenEstimate = EstimateTokens(d.Content)
		d.ContentHash = ContentHash(d.Content)
	}
}

// AssignFilenames renumbers the whole document set with a running
// 1-based index, preserving pairwise-distinct filenames after merges.
func AssignFilenames(docs []*Document) {
	for i, d := range docs {
		d.Filename = fmt.Sprintf("%02d-%s.md", i+1, Slugify(d.Title))
	}
}

// Slugify lowercases a title, collapses non-alphanumeric runs to a
// single hyphen, strips leading/trailing hyphens, and truncates to 50
// characters. Empty results fall back to "section".
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	slug := strings.Trim(sb.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	if slug == "" {
		return "section"
	}
	return slug
}

// EstimateTokens approximates token count as ceil(len/4). A coarse
// approximation by design, not a real tokenizer; replacing it with
// exact tokenization would change downstream fixtures.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// ContentHash computes a deterministic xxhash of content, used for
// change detection across re-extractions.
func ContentHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%016x", h)
}

// siblingLinkPattern matches absolute llms*.txt URLs referenced inside
// fetched content.
var siblingLinkPattern = regexp.MustCompile(`https?://[^\s()\[\]<>"'` + "`" + `]*llms[A-Za-z0-9._-]*\.txt`)

// ExtractSiblingLinks finds same-standard files referenced inside
// content via absolute URL, excluding the canonical URL itself. When
// multiple variants share a normalized base name (llms.txt vs
// llms-full.txt at the same location), the -full variant is preferred
// and the others are discarded. Order of first appearance is kept.
func ExtractSiblingLinks(content, canonicalURL string) []string {
	matches := siblingLinkPattern.FindAllString(content, -1)
	canonical := NormalizeURLKey(canonicalURL)

	type variant struct {
		url   string
		full  bool
		order int
	}
	byBase := make(map[string]variant)
	var bases []string

	for i, m := range matches {
		key := NormalizeURLKey(m)
		if key == canonical {
			continue
		}
		base := strings.Replace(key, "llms-full.txt", "llms.txt", 1)
		full := strings.Contains(key, "llms-full.txt")

		existing, ok := byBase[base]
		if !ok {
			byBase[base] = variant{url: m, full: full, order: i}
			bases = append(bases, base)
			continue
		}
		if full && !existing.full {
			byBase[base] = variant{url: m, full: true, order: existing.order}
		}
	}

	out := make([]string, 0, len(bases))
	for _, b := range bases {
		out = append(out, byBase[b].url)
	}
	return out
}
