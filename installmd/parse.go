package installmd

import (
	"fmt"
	"regexp"
	"strings"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

var (
	h1Pattern         = regexp.MustCompile(`(?m)^#[ \t]+(.+)$`)
	blockquotePattern = regexp.MustCompile(`(?m)^>[ \t]*(.+)$`)
	h2Pattern         = regexp.MustCompile(`(?m)^##[ \t]+.+$`)
	todoHeaderPattern = regexp.MustCompile(`(?mi)^##[ \t]+todo\b`)
	checkboxPattern   = regexp.MustCompile(`^\s*-\s*\[([ xX])\]\s*(.+)$`)

	// actionPromptPattern matches instruction-style imperative lines
	// ("Copy this file...", "Follow the steps below...").
	actionPromptPattern = regexp.MustCompile(`(?i)^(please\s+)?(copy|paste|run|execute|follow|read|apply|complete|use|install|implement|give|feed)\b`)
)

const (
	objectiveLabel  = "objective:"
	doneWhenLabel   = "done when:"
	executeNowMark  = "execute now"
	executeNowLabel = "execute now:"
)

// Parse extracts structured fields from raw install.md content and
// validates structural completeness. Every field is extracted
// independently; fields with no textual match stay empty. The returned
// value always satisfies IsValid == (len(ValidationErrors) == 0).
func Parse(raw string) *llmsdocs.ParsedInstallMd {
	lines := strings.Split(raw, "\n")

	p := &llmsdocs.ParsedInstallMd{
		Raw:              raw,
		ProductName:      firstSubmatch(h1Pattern, raw),
		Description:      firstSubmatch(blockquotePattern, raw),
		Objective:        labeledValue(lines, objectiveLabel),
		DoneWhen:         labeledValue(lines, doneWhenLabel),
		ActionPrompt:     actionPrompt(lines),
		TodoItems:        parseTodoItems(lines),
		Steps:            parseSteps(lines),
		ValidationErrors: []string{},
	}

	p.ValidationErrors = validate(raw)
	p.IsValid = len(p.ValidationErrors) == 0
	return p
}

// IsValid is a cheap pre-filter used before full parsing. It requires
// an H1, an OBJECTIVE: line, a DONE WHEN: line, and a ## TODO section.
// It deliberately does not require EXECUTE NOW:, unlike full
// validation; that asymmetry is part of the contract.
func IsValid(raw string) bool {
	return h1Pattern.MatchString(raw) &&
		hasLabel(raw, objectiveLabel) &&
		hasLabel(raw, doneWhenLabel) &&
		todoHeaderPattern.MatchString(raw)
}

// validate runs every structural check and collects all failures;
// it never stops at the first one.
func validate(raw string) []string {
	errs := []string{}

	if !h1Pattern.MatchString(raw) {
		errs = append(errs, "Missing product name")
	}
	if !hasLabel(raw, objectiveLabel) {
		errs = append(errs, "Missing OBJECTIVE: line")
	}
	if !hasLabel(raw, doneWhenLabel) {
		errs = append(errs, "Missing DONE WHEN: line")
	}
	if !todoHeaderPattern.MatchString(raw) {
		errs = append(errs, "Missing ## TODO section")
	}
	if len(h2Pattern.FindAllString(raw, -1)) < 2 {
		errs = append(errs, "should have at least one step section")
	}
	if !hasLabel(raw, executeNowLabel) {
		errs = append(errs, "Missing EXECUTE NOW: marker")
	}

	return errs
}

func firstSubmatch(re *regexp.Regexp, raw string) string {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// hasLabel reports whether any line contains the label, case-insensitive.
func hasLabel(raw, label string) bool {
	return strings.Contains(strings.ToLower(raw), label)
}

// labeledValue returns the text after the first occurrence of a
// "LABEL:" marker, up to end of line.
func labeledValue(lines []string, label string) string {
	for _, line := range lines {
		idx := strings.Index(strings.ToLower(line), label)
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(line[idx+len(label):])
		return strings.TrimSuffix(value, "**")
	}
	return ""
}

// actionPrompt scans for an instruction-style sentence appearing before
// the OBJECTIVE: marker. Without an OBJECTIVE: marker there is nothing
// to anchor the scan and the prompt stays empty.
func actionPrompt(lines []string) string {
	objectiveAt := -1
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), objectiveLabel) {
			objectiveAt = i
			break
		}
	}
	if objectiveAt < 0 {
		return ""
	}

	for _, line := range lines[:objectiveAt] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, ">") || strings.HasPrefix(trimmed, "-") ||
			strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "`") {
			continue
		}
		if actionPromptPattern.MatchString(trimmed) {
			return trimmed
		}
	}
	return ""
}

// parseTodoItems extracts checklist entries from the section starting
// at the ## TODO header and ending at the next ## header, a horizontal
// rule, an EXECUTE NOW line, or end of text.
func parseTodoItems(lines []string) []llmsdocs.TodoItem {
	items := []llmsdocs.TodoItem{}

	start := -1
	for i, line := range lines {
		if todoHeaderPattern.MatchString(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return items
	}

	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(line, "## ") || trimmed == "---" ||
			strings.Contains(strings.ToLower(line), executeNowMark) {
			break
		}
		m := checkboxPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		items = append(items, llmsdocs.TodoItem{
			ID:        fmt.Sprintf("todo-%d", len(items)+1),
			Text:      strings.TrimSpace(m[2]),
			Completed: m[1] == "x" || m[1] == "X",
		})
	}

	return items
}

// parseSteps extracts step sections: every "## " header that is not the
// TODO header and does not itself contain EXECUTE NOW begins a step
// running to the next such header or to an EXECUTE NOW: marker inside
// the section, whichever comes first.
func parseSteps(lines []string) []llmsdocs.InstallStep {
	steps := []llmsdocs.InstallStep{}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !strings.HasPrefix(line, "## ") {
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(line, "## "))
		if strings.EqualFold(title, "todo") ||
			strings.Contains(strings.ToLower(line), executeNowMark) {
			continue
		}

		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if strings.HasPrefix(lines[j], "## ") ||
				strings.Contains(strings.ToLower(lines[j]), executeNowLabel) {
				end = j
				break
			}
		}

		steps = append(steps, parseStepSection(len(steps)+1, title, lines[i+1:end]))
		i = end - 1
	}

	return steps
}

// parseStepSection builds one step from its body lines: description is
// the plain text before the first fence, code blocks are every fenced
// region, and a block's label is the nearest preceding non-empty plain
// line when it ends in ":" or contains "using".
func parseStepSection(id int, title string, body []string) llmsdocs.InstallStep {
	step := llmsdocs.InstallStep{
		ID:         fmt.Sprintf("step-%d", id),
		Title:      title,
		CodeBlocks: []llmsdocs.CodeBlock{},
	}

	var descLines []string
	inFence := false
	seenFence := false
	fenceLang := ""
	pendingLabel := ""
	lastText := ""
	var fenceLines []string

	for _, line := range body {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				step.CodeBlocks = append(step.CodeBlocks, llmsdocs.CodeBlock{
					Language: fenceLang,
					Code:     strings.Join(fenceLines, "\n"),
					Label:    pendingLabel,
				})
				inFence = false
				fenceLines = nil
				pendingLabel = ""
				lastText = ""
				continue
			}

			inFence = true
			fenceLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			if isLabelLine(lastText) {
				pendingLabel = strings.TrimSuffix(lastText, ":")
				if !seenFence {
					descLines = dropTrailingLine(descLines, lastText)
				}
			}
			seenFence = true
			continue
		}

		if inFence {
			fenceLines = append(fenceLines, line)
			continue
		}

		if trimmed != "" {
			lastText = trimmed
		}
		if !seenFence {
			descLines = append(descLines, line)
		}
	}

	step.Description = strings.TrimSpace(strings.Join(descLines, "\n"))
	return step
}

// isLabelLine reports whether a line introduces the code block that
// follows it: non-empty and either ending in ":" or containing "using".
func isLabelLine(line string) bool {
	if line == "" {
		return false
	}
	return strings.HasSuffix(line, ":") ||
		strings.Contains(strings.ToLower(line), "using")
}

// dropTrailingLine removes the last occurrence of target (plus any
// trailing blank lines) from the collected description lines.
func dropTrailingLine(lines []string, target string) []string {
	for i := len(lines) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if trimmed == target {
			return lines[:i]
		}
		break
	}
	return lines
}
