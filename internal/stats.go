package internal

import (
	"time"
)

// AppStats counters for run totals. Plain ints: the scan is strictly sequential.
type AppStats struct {
	start          time.Time
	FilesProcessed int64
	Errors         int64
	Words          int64
	Lines          int64
	Bytes          int64
}

func (s *AppStats) Start() {
	s.start = time.Now()
}

func (s *AppStats) Elapsed() time.Duration {
	return time.Since(s.start)
}
