package display

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// StatusLine renders a single in-place terminal line while a slow
// request is in flight, updating the elapsed time once per second.
type StatusLine struct {
	mu       sync.Mutex
	writer   io.Writer
	label    string
	start    time.Time
	ticker   *time.Ticker
	done     chan struct{}
	wg       sync.WaitGroup // Ensures goroutine exits before Stop() returns
	active   bool
	lastLine string
}

// New creates a new StatusLine writing to the given writer.
func New(w io.Writer) *StatusLine {
	return &StatusLine{
		writer: w,
		done:   make(chan struct{}),
	}
}

// Start begins the update loop with the given label.
func (s *StatusLine) Start(label string) {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.label = label
	s.start = time.Now()
	s.ticker = time.NewTicker(time.Second)
	s.wg.Add(1)
	s.mu.Unlock()

	go s.updateLoop()
}

// Stop halts the update loop and clears the status line.
// Blocks until the update goroutine has exited to prevent race conditions.
func (s *StatusLine) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.mu.Unlock()

	s.ticker.Stop()
	close(s.done)
	s.wg.Wait() // Wait for goroutine to exit before clearing
	s.clearLine()
}

// updateLoop periodically renders the status line.
func (s *StatusLine) updateLoop() {
	defer s.wg.Done()
	s.render()
	for {
		select {
		case <-s.ticker.C:
			s.render()
		case <-s.done:
			return
		}
	}
}

// render draws the current status line.
func (s *StatusLine) render() {
	s.mu.Lock()
	label := s.label
	start := s.start
	lastLine := s.lastLine
	s.mu.Unlock()

	line := formatLine(label, time.Since(start))

	// Only update if changed (reduces flicker)
	if line == lastLine {
		return
	}

	s.mu.Lock()
	s.lastLine = line
	s.mu.Unlock()

	// Move to start of line, clear it, write new content
	fmt.Fprintf(s.writer, "\r\033[K%s", line)
}

// formatLine creates the status line string.
func formatLine(label string, elapsed time.Duration) string {
	// Truncate label if too long
	if len(label) > 40 {
		label = label[:37] + "..."
	}
	return fmt.Sprintf("%s │ ⏱ %s", label, formatDuration(elapsed))
}

// clearLine clears the status line.
func (s *StatusLine) clearLine() {
	fmt.Fprintf(s.writer, "\r\033[K")
}

// formatDuration formats a duration as MM:SS, or HH:MM:SS past an hour.
func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
