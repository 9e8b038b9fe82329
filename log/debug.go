// Package log provides the application loggers plus a debug channel with
// render profiling. Enable the debug channel by setting WB_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "whitebox-debug.log")

// InitDebug opens the debug log when WB_DEBUG=1. Otherwise DebugLog discards.
func InitDebug() {
	DebugLog = log.New(io.Discard, "", 0)
	if os.Getenv("WB_DEBUG") != "1" {
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		return
	}
	DebugEnabled = true
	debugLogFile = f
	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	DebugLog.Printf("debug log: %s", debugLogFileName)
}

// CloseDebug writes the render profile and closes the debug log.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	profiler.LogStats()
	_ = debugLogFile.Close()
	debugLogFile = nil
	fmt.Fprintln(os.Stderr, "wrote debug logs to "+debugLogFileName)
}

func Debug(format string, v ...interface{}) {
	tracef("", format, v...)
}

// LayoutTrace logs constraint and degradation changes on resize.
func LayoutTrace(format string, v ...interface{}) {
	tracef("LAYOUT", format, v...)
}

// InputTrace logs mouse gestures and key presses.
func InputTrace(format string, v ...interface{}) {
	tracef("INPUT", format, v...)
}

// SettleTrace logs the settle animation: start, stale ticks, rest.
func SettleTrace(format string, v ...interface{}) {
	tracef("SETTLE", format, v...)
}

func tracef(tag, format string, v ...interface{}) {
	if !DebugEnabled || DebugLog == nil {
		return
	}
	if tag != "" {
		format = "[" + tag + "] " + format
	}
	DebugLog.Printf(format, v...)
}

// renderStats accumulates timings of one named render.
type renderStats struct {
	count    int64
	total    time.Duration
	fastest  time.Duration
	slowest  time.Duration
	lastSeen time.Time
}

func (s *renderStats) add(d time.Duration) {
	if s.count == 0 || d < s.fastest {
		s.fastest = d
	}
	s.slowest = max(s.slowest, d)
	s.count++
	s.total += d
	s.lastSeen = time.Now()
}

func (s *renderStats) mean() time.Duration {
	if s.count == 0 {
		return 0
	}
	return s.total / time.Duration(s.count)
}

// frameWindow is how many recent settle frames GetStats summarizes.
const frameWindow = 100

// RenderProfiler times renders by name and settle frames against the frame
// budget. It records nothing unless debug logging is on.
type RenderProfiler struct {
	mu      sync.RWMutex
	renders map[string]*renderStats
	frames  renderStats
	recent  []time.Duration
	over    int64
	budget  time.Duration
}

var profiler = newProfiler()

func newProfiler() *RenderProfiler {
	return &RenderProfiler{
		renders: map[string]*renderStats{},
		recent:  make([]time.Duration, 0, frameWindow),
		budget:  time.Second / 60,
	}
}

func GetProfiler() *RenderProfiler {
	return profiler
}

// SetFrameBudget sets the frame time above which a settle frame counts as
// slow. Non-positive values are ignored.
func (p *RenderProfiler) SetFrameBudget(d time.Duration) {
	if d <= 0 {
		return
	}
	p.mu.Lock()
	p.budget = d
	p.mu.Unlock()
}

// StartRender starts timing the named render; call the result when done.
func (p *RenderProfiler) StartRender(name string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		p.mu.Lock()
		defer p.mu.Unlock()
		s, ok := p.renders[name]
		if !ok {
			s = &renderStats{}
			p.renders[name] = s
		}
		s.add(elapsed)
	}
}

// RecordFrame records the time spent on one settle frame.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frames.add(elapsed)
	if len(p.recent) == frameWindow {
		copy(p.recent, p.recent[1:])
		p.recent = p.recent[:frameWindow-1]
	}
	p.recent = append(p.recent, elapsed)

	if elapsed > p.budget {
		p.over++
		tracef("PERF", "slow settle frame: %v (budget %v)", elapsed, p.budget)
	}
}

// GetStats summarizes the profile, renders ordered by total time.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("\n=== Render Profile ===\n")
	fmt.Fprintf(&sb, "settle frames: %d avg=%v slowest=%v over budget (%v): %d\n",
		p.frames.count, p.frames.mean(), p.frames.slowest, p.budget, p.over)
	if n := len(p.recent); n > 0 {
		var sum time.Duration
		for _, d := range p.recent {
			sum += d
		}
		fmt.Fprintf(&sb, "last %d frames: avg=%v\n", n, sum/time.Duration(n))
	}

	names := make([]string, 0, len(p.renders))
	for name := range p.renders {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return p.renders[names[i]].total > p.renders[names[j]].total
	})
	for _, name := range names {
		s := p.renders[name]
		fmt.Fprintf(&sb, "  %s: count=%d total=%v avg=%v min=%v max=%v\n",
			name, s.count, s.total, s.mean(), s.fastest, s.slowest)
	}
	return sb.String()
}

func (p *RenderProfiler) LogStats() {
	tracef("", "%s", p.GetStats())
}

// Reset clears the recorded timings. The frame budget is kept.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renders = map[string]*renderStats{}
	p.frames = renderStats{}
	p.recent = p.recent[:0]
	p.over = 0
}
