// Package cli provides progress output helpers for theme switches.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

type progressStep struct {
	out     io.Writer
	label   string
	started time.Time
	enabled bool
}

func startProgress(out io.Writer, label string) *progressStep {
	if !progressEnabled(out) {
		return nil
	}
	fmt.Fprintf(out, "%s... ", label)
	return &progressStep{
		out:     out,
		label:   label,
		started: time.Now(),
		enabled: true,
	}
}

func (p *progressStep) Done() {
	if p == nil || !p.enabled {
		return
	}
	fmt.Fprintf(p.out, "done (%s)\n", formatDuration(time.Since(p.started)))
}

func (p *progressStep) Fail(err error) {
	if p == nil || !p.enabled {
		return
	}
	if err != nil {
		fmt.Fprintf(p.out, "failed: %v\n", err)
		return
	}
	fmt.Fprintln(p.out, "failed")
}

func progressEnabled(out io.Writer) bool {
	if jsonOutput || noProgress {
		return false
	}
	if _, ok := os.LookupEnv("CHCOLORS_NO_PROGRESS"); ok {
		return false
	}
	if _, ok := os.LookupEnv("NO_PROGRESS"); ok {
		return false
	}
	return isTerminal(out)
}

// progressObserver prints one progress line per program.
type progressObserver struct {
	out     io.Writer
	current *progressStep
}

func newProgressObserver(out io.Writer) *progressObserver {
	return &progressObserver{out: out}
}

func (o *progressObserver) ProgramStarted(program string) {
	o.current = startProgress(o.out, fmt.Sprintf("Applying to %s", program))
}

func (o *progressObserver) ProgramFinished(program string, err error) {
	if err != nil {
		o.current.Fail(err)
	} else {
		o.current.Done()
	}
	o.current = nil
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	if d < time.Second {
		return d.Round(10 * time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
