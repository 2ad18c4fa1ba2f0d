// Package progress tracks bytes processed by archive operations and
// periodically reports throughput.
package progress

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	bytesProcessed atomic.Uint64
	totalSize      atomic.Uint64
	done           chan struct{}
	running        bool
	mu             sync.Mutex
)

// Init starts progress tracking for an operation of total bytes.
func Init(total uint64) {
	mu.Lock()
	defer mu.Unlock()

	if running {
		return
	}

	bytesProcessed.Store(0)
	if total == 0 {
		total = 1 // avoid division by zero
	}
	totalSize.Store(total)

	done = make(chan struct{})
	running = true
	go logger()
}

// Stop ends progress tracking.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if running {
		close(done)
		running = false
	}
}

// AddBytes adds processed bytes to the counter.
func AddBytes(n uint64) {
	if n > 0 {
		bytesProcessed.Add(n)
	}
}

// logger emits a progress event every second until Stop is called.
func logger() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	start := time.Now()
	var prev uint64
	for {
		select {
		case <-ticker.C:
			current := bytesProcessed.Load()
			total := totalSize.Load()
			rate := current - prev
			prev = current

			log.Info().
				Str("processed", formatSize(current)).
				Str("total", formatSize(total)).
				Str("rate", formatSize(rate)+"/s").
				Float64("percent", float64(current)/float64(total)*100).
				Msg("processing")
		case <-done:
			elapsed := time.Since(start).Seconds()
			if elapsed < 0.001 {
				elapsed = 0.001
			}
			log.Debug().
				Str("processed", formatSize(bytesProcessed.Load())).
				Float64("seconds", elapsed).
				Msg("processing finished")
			return
		}
	}
}

// formatSize returns a human-readable size string.
func formatSize(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
