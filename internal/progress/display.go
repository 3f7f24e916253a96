package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Indicator shows a spinner for an in-flight operation on TTYs and plain
// messages otherwise.
type Indicator struct {
	capabilities TerminalCapabilities
	spinner      *spinner.Spinner
	symbols      Symbols
}

// NewIndicator creates an indicator for the given terminal capabilities.
func NewIndicator(caps TerminalCapabilities) *Indicator {
	return &Indicator{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// Start begins displaying progress for an operation.
func (p *Indicator) Start(msg string) {
	if p.capabilities.IsTTY {
		p.spinner = spinner.New(
			spinner.CharSets[p.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		p.spinner.Writer = os.Stderr // keep stdout clean for the report
		p.spinner.Suffix = " " + msg
		p.spinner.Start()
	} else {
		fmt.Println(msg)
	}
}

// Stop stops the spinner without printing a status line.
func (p *Indicator) Stop() {
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}
