package llmsdocs

import "strings"

// Classification thresholds for full vs standard llms.txt. These exact
// values are contract: downstream consumers and fixtures assume them.
const (
	fullLineThreshold = 50
	fullByteThreshold = 5000
)

// IsLikelyLLMSContent reports whether fetched text looks like genuine
// llms.txt / install.md content rather than an HTML error page or
// unrelated text. The check is: non-empty, not an HTML document, and
// at least one markdown signal present.
func IsLikelyLLMSContent(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, prefix := range []string{"<!doctype", "<html", "<head"} {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}

	return hasMarkdownSignal(trimmed)
}

// hasMarkdownSignal checks for headers, blockquotes, list markers,
// link syntax, or fenced code.
func hasMarkdownSignal(text string) bool {
	if strings.Contains(text, "[") || strings.Contains(text, "```") {
		return true
	}
	for _, line := range strings.Split(text, "\n") {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "#") || strings.HasPrefix(l, ">") ||
			strings.HasPrefix(l, "- ") || strings.HasPrefix(l, "* ") {
			return true
		}
	}
	return false
}

// ClassifyContent distinguishes "full" from "standard" llms.txt using a
// coarse heuristic: the presence of "## " or "### " headers, more than
// 50 lines, or more than 5000 bytes means full. The heuristic is a
// documented approximation, not an exact classification.
func ClassifyContent(text string) ContentType {
	if strings.Contains(text, "\n## ") || strings.HasPrefix(text, "## ") ||
		strings.Contains(text, "\n### ") || strings.HasPrefix(text, "### ") {
		return ContentTypeFull
	}
	if strings.Count(text, "\n")+1 > fullLineThreshold {
		return ContentTypeFull
	}
	if len(text) > fullByteThreshold {
		return ContentTypeFull
	}
	return ContentTypeStandard
}
