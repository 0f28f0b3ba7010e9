package ports

import "jarscope/internal/domain"

// HistoryStore is a bounded, newest-first log of decompilation results
type HistoryStore interface {
	// Append adds a result, evicting the oldest entries beyond capacity
	Append(result domain.Result)

	// List returns every entry, newest first
	List() []domain.Result

	// Get looks up an entry by ID without changing its position
	Get(id string) (domain.Result, bool)

	// Clear removes every entry
	Clear()

	// Capacity returns the maximum number of entries kept
	Capacity() int
}
