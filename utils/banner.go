package utils

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var activeSpinner *spinner.Spinner

func DrawBanner() {
	figure.NewColorFigure("LogClass Doctor", "small", "cyan", true).Print()
}

// StartSpinner shows progress on stderr so stdout stays clean for the report
func StartSpinner() {
	activeSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	activeSpinner.Suffix = " collecting log group usage..."
	activeSpinner.Start()
}

// StopSpinner is safe to call when no spinner is running
func StopSpinner() {
	if activeSpinner == nil {
		return
	}
	activeSpinner.Stop()
	activeSpinner = nil
}
