// Package installmd parses, validates, and generates install.md
// content: LLM-executable install instructions with an objective, a
// completion criterion, a TODO checklist, and step sections carrying
// fenced code blocks.
//
// Extraction is regex/structural and intentionally approximate: each
// field is extracted independently and defaults to empty rather than
// failing, so a partially structured document still yields a usable
// result. Structural problems are reported as validation errors on the
// parsed value, never as Go errors.
package installmd
