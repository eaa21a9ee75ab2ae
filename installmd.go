package llmsdocs

import "context"

// TodoItem is one checklist entry from an install.md TODO section.
type TodoItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// CodeBlock is a fenced code block inside an install step, optionally
// preceded by a label line.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Label    string `json:"label,omitempty"`
}

// InstallStep is one "## " section of an install.md beyond the TODO
// checklist.
type InstallStep struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CodeBlocks  []CodeBlock `json:"codeBlocks"`
}

// ParsedInstallMd is the structured form of raw install.md content.
//
// Fields with no textual match default to empty strings or empty
// slices, never nil, so consumers never branch on absence vs emptiness.
// Invariant: IsValid == (len(ValidationErrors) == 0). Structural
// invalidity is data, never an error.
type ParsedInstallMd struct {
	Raw              string        `json:"raw"`
	ProductName      string        `json:"productName"`
	Description      string        `json:"description"`
	ActionPrompt     string        `json:"actionPrompt"`
	Objective        string        `json:"objective"`
	DoneWhen         string        `json:"doneWhen"`
	TodoItems        []TodoItem    `json:"todoItems"`
	Steps            []InstallStep `json:"steps"`
	IsValid          bool          `json:"isValid"`
	ValidationErrors []string      `json:"validationErrors"`
}

// InstallSynthesizer drafts install.md content from extracted
// documentation. Implementations call an external text-generation
// service; callers re-validate the output with the install.md parser.
type InstallSynthesizer interface {
	Synthesize(ctx context.Context, ex *Extraction) (string, error)
}

// TokenCounter counts tokens exactly, as opposed to the EstimateTokens
// heuristic used throughout segmentation.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
