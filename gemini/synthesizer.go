// Package gemini implements text-generation services using Google
// Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	llmsdocs "github.com/nirholas/extract-llms-docs"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxPromptDocs bounds how many extracted sections the prompt carries.
// Full-variant extractions can run to hundreds of sections; the
// installation-relevant ones cluster at the front.
const maxPromptDocs = 30

// Ensure Synthesizer implements llmsdocs.InstallSynthesizer at compile time.
var _ llmsdocs.InstallSynthesizer = (*Synthesizer)(nil)

// Synthesizer drafts install.md content from extracted documentation
// using Google Gemini. The output follows the install.md structural
// contract; callers re-validate it with the installmd parser before
// trusting it.
type Synthesizer struct {
	client *genai.Client
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(client *genai.Client) *Synthesizer {
	return &Synthesizer{client: client}
}

// Synthesize drafts install.md content for the extracted documentation.
func (s *Synthesizer) Synthesize(ctx context.Context, ex *llmsdocs.Extraction) (string, error) {
	if ex == nil || len(ex.Documents) == 0 {
		return "", llmsdocs.Errorf(llmsdocs.EINVALID, "extraction with documents required")
	}

	prompt := BuildUserPrompt(ex)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", llmsdocs.Errorf(llmsdocs.EINTERNAL, "gemini returned nil result")
	}

	return stripCodeFence(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You write install.md files: self-contained installation guides " +
					"an automated agent can execute. Produce exactly this structure and " +
					"nothing else: an H1 with the product name, a blockquote description, " +
					"an imperative action line, an OBJECTIVE: line, a DONE WHEN: line, " +
					"a '## TODO' section with '- [ ]' checkboxes, one '## ' section per " +
					"installation step with fenced code blocks, a '---' separator, and a " +
					"final 'EXECUTE NOW:' line. Base every command on the documentation " +
					"provided; never invent package names or URLs.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the extracted
// documentation sections.
func BuildUserPrompt(ex *llmsdocs.Extraction) string {
	docs := ex.Documents
	if len(docs) > maxPromptDocs {
		docs = docs[:maxPromptDocs]
	}

	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourceURL
		}
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<source>%s</source>\n", doc.SourceURL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", doc.Content)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Write the install.md for the product documented above (source: %s).", ex.SourceURL)
	return sb.String()
}

// stripCodeFence removes a wrapping markdown fence when the model
// returns the whole file inside one.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return text
	}
	return strings.Join(lines[1:len(lines)-1], "\n")
}
