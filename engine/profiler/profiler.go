package profiler

import (
	"log"
	"runtime"
	"time"
)

// Sample is one logged measurement window.
type Sample struct {
	// FPS is the number of frames ticked per second over the window.
	FPS float64
	// HeapMB is the live heap at the end of the window.
	HeapMB float64
	// AllocRateMB is the heap allocation rate over the window in MB/s.
	AllocRateMB float64
	// SysMB is the memory obtained from the OS.
	SysMB float64
	// NumGC is the total number of completed GC cycles.
	NumGC uint32
	// LastPauseUs and MaxPauseUs are the latest and the longest GC pause within the window.
	LastPauseUs, MaxPauseUs uint64
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Sample
	quiet          bool
	now            func() time.Time
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per rendered frame.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if a new sample was taken this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	s := Sample{
		FPS:    float64(p.frameCount) / elapsed.Seconds(),
		HeapMB: float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:  float64(p.memStats.Sys) / 1024 / 1024,
		NumGC:  p.memStats.NumGC,
	}
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	s.AllocRateMB = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	if s.NumGC > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		s.LastPauseUs = p.memStats.PauseNs[(s.NumGC-1)%256] / 1000

		startIdx := p.lastGCCount
		if s.NumGC-startIdx > 256 {
			startIdx = s.NumGC - 256
		}
		for i := startIdx; i < s.NumGC; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > s.MaxPauseUs {
				s.MaxPauseUs = pause
			}
		}
	}

	if !p.quiet {
		log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			s.FPS, s.HeapMB, s.AllocRateMB, s.NumGC, s.LastPauseUs, s.MaxPauseUs, s.SysMB)
	}

	p.last = s
	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = s.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recent sample, or the zero Sample before the first interval elapses.
func (p *Profiler) Last() Sample {
	return p.last
}
