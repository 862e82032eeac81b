package cli

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressReporter reports per-repo progress for operations that touch
// several remotes (pin, verify).
type ProgressReporter struct {
	mu       sync.Mutex
	out      io.Writer
	statuses map[string]string
	start    time.Time
}

// NewProgressReporter creates a new progress reporter writing to out.
func NewProgressReporter(out io.Writer) *ProgressReporter {
	return &ProgressReporter{
		out:      out,
		statuses: make(map[string]string),
		start:    time.Now(),
	}
}

// Update records and prints the status of a repo.
func (p *ProgressReporter) Update(repo, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.statuses[repo] = status

	symbol := "[.]"
	switch status {
	case "done":
		symbol = "[*]"
	case "failed":
		symbol = "[x]"
	case "resolving", "fetching":
		symbol = "[~]"
	}

	fmt.Fprintf(p.out, "%s %s: %s\n", symbol, repo, status)
}

// Done prints the elapsed time for the whole operation.
func (p *ProgressReporter) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()

	elapsed := time.Since(p.start).Round(time.Millisecond)
	fmt.Fprintf(p.out, "\nCompleted in %s\n", elapsed)
}
