package domain

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Result is one successful decompilation. It is never modified after creation.
type Result struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	Timestamp time.Time `json:"timestamp"`
	Code      string    `json:"code"`
	SizeLabel string    `json:"sizeLabel"`
}

// NewResult builds a Result for an input of size bytes
func NewResult(id, fileName, code string, size int, at time.Time) Result {
	return Result{
		ID:        id,
		FileName:  fileName,
		Timestamp: at,
		Code:      code,
		SizeLabel: SizeLabel(size),
	}
}

// SizeLabel renders a byte count using 1024-based units
func SizeLabel(size int) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	value := float64(size) / unit
	for _, suffix := range []string{"KB", "MB"} {
		if value < unit {
			return fmt.Sprintf("%.2f %s", value, suffix)
		}
		value /= unit
	}
	return fmt.Sprintf("%.2f GB", value)
}

// IDSource issues Result IDs derived from the creation instant (Unix
// milliseconds). IDs are strictly increasing even within one millisecond.
type IDSource struct {
	mu   sync.Mutex
	last int64
}

// Next returns the ID for a result created at t
func (s *IDSource) Next(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := t.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return strconv.FormatInt(id, 10)
}
