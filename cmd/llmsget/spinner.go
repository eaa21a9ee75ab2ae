package main

import (
	"time"

	"github.com/briandowns/spinner"
)

// startSpinner shows a progress spinner on stderr while a long
// operation runs. It is a no-op for JSON output or non-interactive
// sessions, where spinner frames would pollute piped output. The
// returned func stops the spinner.
func startSpinner(deps *Dependencies, jsonOutput bool, suffix string) func() {
	if jsonOutput || !deps.Interactive {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(deps.Stderr))
	s.Suffix = suffix
	s.Start()
	return s.Stop
}
