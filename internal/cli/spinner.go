package cli

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// WithSpinner runs fn while showing a progress spinner on stderr, unless
// quiet mode is enabled. Stderr keeps the spinner out of pipeline-captured
// stdout.
func WithSpinner(message string, quiet bool, fn func() error) error {
	if quiet {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	defer s.Stop()

	return fn()
}
