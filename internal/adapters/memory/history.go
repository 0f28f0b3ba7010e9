package memory

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"jarscope/internal/domain"
)

// DefaultHistorySize is the number of results kept when no size is configured
const DefaultHistorySize = 10

// History implements ports.HistoryStore as a bounded LRU keyed by result ID.
// Lookups use Peek so reading an entry never changes its position.
type History struct {
	cache    *lru.Cache[string, domain.Result]
	capacity int
}

// NewHistory creates a history keeping at most capacity results
func NewHistory(capacity int) (*History, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("history capacity must be positive, got %d", capacity)
	}
	cache, err := lru.New[string, domain.Result](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create history cache: %w", err)
	}
	return &History{cache: cache, capacity: capacity}, nil
}

// Append adds a result as the newest entry, evicting the oldest beyond capacity
func (h *History) Append(result domain.Result) {
	h.cache.Add(result.ID, result)
}

// List returns every entry, newest first
func (h *History) List() []domain.Result {
	keys := h.cache.Keys()
	out := make([]domain.Result, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		if r, ok := h.cache.Peek(keys[i]); ok {
			out = append(out, r)
		}
	}
	return out
}

// Get looks up an entry by ID
func (h *History) Get(id string) (domain.Result, bool) {
	return h.cache.Peek(id)
}

// Clear removes every entry
func (h *History) Clear() {
	h.cache.Purge()
}

// Capacity returns the maximum number of entries
func (h *History) Capacity() int {
	return h.capacity
}
