package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ProgressReporter reports progress through a batch of configurations.
type ProgressReporter interface {
	Start(total int)
	Increment()
	Finish()
}

// SimpleProgress renders a single-line progress bar.
type SimpleProgress struct {
	mu      sync.Mutex
	label   string
	total   int
	current int
	started time.Time
	writer  io.Writer
}

// NewProgressReporter creates a progress reporter that writes to w.
// If w is nil, it defaults to os.Stderr so that it never mixes with results.
func NewProgressReporter(w io.Writer, label string) ProgressReporter {
	if w == nil {
		w = os.Stderr
	}
	return &SimpleProgress{writer: w, label: label}
}

// Start resets the reporter for total items.
func (p *SimpleProgress) Start(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = total
	p.current = 0
	p.started = time.Now()
	p.render()
}

// Increment advances by one item.
func (p *SimpleProgress) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current < p.total {
		p.current++
	}
	p.render()
}

// Finish completes the bar and ends the line.
func (p *SimpleProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.total == 0 {
		return
	}
	p.current = p.total
	p.render()
	fmt.Fprintln(p.writer)
}

func (p *SimpleProgress) render() {
	if p.total == 0 {
		return
	}

	percent := float64(p.current) / float64(p.total) * 100
	barWidth := 30
	filled := int(float64(barWidth) * percent / 100)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	rate := 0.0
	if elapsed := time.Since(p.started).Seconds(); elapsed > 0 {
		rate = float64(p.current) / elapsed
	}

	fmt.Fprintf(p.writer, "\r%s [%s] %d/%d %.1f files/s", p.label, bar, p.current, p.total, rate)
}

// NoProgress discards progress updates.
type NoProgress struct{}

func (NoProgress) Start(int)  {}
func (NoProgress) Increment() {}
func (NoProgress) Finish()    {}
