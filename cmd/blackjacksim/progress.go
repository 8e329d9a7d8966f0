package main

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Forty dots fit alongside the header in an 80-char terminal.
const progressDots = 40

// progressPrinter renders a dot per slice of completed runs, so a long
// simulation shows steady movement without scrolling.
type progressPrinter struct {
	mu      sync.Mutex
	w       io.Writer
	runs    int
	hands   int
	dots    int
	started time.Time
}

func newProgressPrinter(w io.Writer, runs, hands int) *progressPrinter {
	return &progressPrinter{w: w, runs: runs, hands: hands}
}

// Start prints the header and begins timing
func (p *progressPrinter) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.started = time.Now()
	fmt.Fprintf(p.w, "Simulating %d runs x %d hands: ", p.runs, p.hands)
}

// RunComplete prints any dots earned since the last call. The simulator
// invokes it from worker goroutines, so it locks.
func (p *progressPrinter) RunComplete(completed, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if total <= 0 {
		total = 1
	}
	target := completed * progressDots / total
	for p.dots < target {
		fmt.Fprint(p.w, ".")
		p.dots++
	}

	if completed >= total {
		elapsed := time.Since(p.started)
		fmt.Fprintf(p.w, " %d runs in %.1fs\n", total, elapsed.Seconds())
	}
}
