package debug

// Runtime metrics logger. Started only when config.Debug is true.
// Logs goroutine count, heap/stack usage and the working set so that growth
// from repeated photo replacement on the canvas can be spotted.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// Probe returns extra attributes appended to each sample, e.g. the size of
// the loaded image.
type Probe func() []slog.Attr

// StartRuntimeLogger launches a ticker that logs runtime stats every interval
// until the returned stop function is called.
func StartRuntimeLogger(interval time.Duration, logger *slog.Logger, probe Probe) (stop func()) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		var rssErrLogged bool
		for {
			select {
			case <-done:
				return
			case <-t.C:
			}
			metrics.Read(samples)
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, err := residentSetSize()
			if err != nil && !rssErrLogged {
				logger.Warn("memlog: working set unavailable", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			attrs := []any{
				slog.Uint64("goroutines", samples[0].Value.Uint64()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("stack_inuse", ms.StackInuse),
				slog.Uint64("rss", rss),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			}
			if probe != nil {
				for _, a := range probe() {
					attrs = append(attrs, a)
				}
			}
			logger.Info("runtime-stats", attrs...)
		}
	}()
	var stopped bool
	return func() {
		if stopped {
			return
		}
		stopped = true
		close(done)
	}
}
