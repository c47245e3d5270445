package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Progress renders an indeterminate spinner while a provider call is in
// flight. It writes to stderr so stdout stays clean for the generated
// prompt.
type Progress struct {
	bar     *progressbar.ProgressBar
	done    chan struct{}
	stopped chan struct{}
}

// NewProgress starts a spinner with the given status line.
func NewProgress(status string) *Progress {
	p := &Progress{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", status)),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionEnableColorCodes(true),
		),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go func() {
		defer close(p.stopped)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.done:
				return
			case <-ticker.C:
				_ = p.bar.Add(1)
			}
		}
	}()

	return p
}

// Stop halts the spinner and clears its line.
func (p *Progress) Stop() {
	close(p.done)
	<-p.stopped
	_ = p.bar.Clear()
}
