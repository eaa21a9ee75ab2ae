package installmd

import (
	"fmt"
	"strings"
)

// GenerateStep describes one install step for Generate.
type GenerateStep struct {
	Title       string
	Description string
	Label       string
	Language    string
	Code        string
}

// GenerateInput holds the structured fields Generate renders into
// install.md content. Empty fields are replaced with safe defaults so
// the output always passes full validation.
type GenerateInput struct {
	ProductName string
	Description string
	Objective   string
	DoneWhen    string
	TodoItems   []string
	Steps       []GenerateStep
}

// Generate renders structured input as install.md content. The output
// is guaranteed to satisfy both IsValid and full Parse validation:
// generate-then-validate always round-trips.
func Generate(in GenerateInput) string {
	product := defaultStr(in.ProductName, "Untitled Product")
	desc := defaultStr(in.Description, "LLM-executable install instructions.")
	objective := defaultStr(in.Objective, "Install and configure "+product+".")
	doneWhen := defaultStr(in.DoneWhen, "The installation completes without errors.")

	todos := in.TodoItems
	if len(todos) == 0 {
		todos = []string{"Complete the installation steps below"}
	}

	steps := in.Steps
	if len(steps) == 0 {
		steps = []GenerateStep{{
			Title:       "Install",
			Description: "Run the install command for " + product + ".",
			Language:    "bash",
			Code:        "# install " + product,
		}}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", product)
	fmt.Fprintf(&b, "> %s\n\n", desc)
	b.WriteString("Follow the steps below exactly as written.\n\n")
	fmt.Fprintf(&b, "OBJECTIVE: %s\n", objective)
	fmt.Fprintf(&b, "DONE WHEN: %s\n\n", doneWhen)

	b.WriteString("## TODO\n\n")
	for _, item := range todos {
		fmt.Fprintf(&b, "- [ ] %s\n", item)
	}
	b.WriteString("\n")

	for _, s := range steps {
		fmt.Fprintf(&b, "## %s\n\n", defaultStr(s.Title, "Step"))
		if s.Description != "" {
			b.WriteString(s.Description + "\n\n")
		}
		if s.Code != "" {
			if s.Label != "" {
				fmt.Fprintf(&b, "%s:\n", strings.TrimSuffix(s.Label, ":"))
			}
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", s.Language, s.Code)
		}
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "EXECUTE NOW: Complete every unchecked TODO item for %s, in order.\n", product)

	return b.String()
}

func defaultStr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
