// Package spinner shows progress while AWS calls are running.
package spinner

import (
	"time"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/terminal"
	"github.com/briandowns/spinner"
)

// DefaultMessage is shown while accounts and regions are scanned.
const DefaultMessage = " Scanning EC2 instances and security groups..."

var loader *spinner.Spinner

// StartSpinner starts the CLI loading spinner. It does nothing when stdout
// is not a terminal.
func StartSpinner(message string) {
	if !terminal.IsInteractive() {
		return
	}
	if message == "" {
		message = DefaultMessage
	}

	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = message
	loader.Start()
}

// StopSpinner stops the CLI loading spinner.
func StopSpinner() {
	if loader != nil {
		loader.Stop()
		loader = nil
	}
}
