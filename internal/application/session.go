package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"jarscope/internal/domain"
	"jarscope/internal/ports"
)

// ErrSuperseded is returned when a newer request finished or started before
// this one could be applied
var ErrSuperseded = errors.New("superseded by a newer request")

// Ticket identifies one pipeline run. Only the most recently issued ticket
// may change session state.
type Ticket struct {
	ID uint64
}

// State is a snapshot of what the user currently sees
type State struct {
	Current  *Result // nil until something was decompiled
	Input    string  // name of the opened input file
	Kind     InputKind
	Members  []string
	Tree     *PathTree
	Selected string
}

// Session owns the shared state of one user session: the current result,
// the open archive, the history and the display settings.
type Session struct {
	mu       sync.Mutex
	history  ports.HistoryStore
	ids      domain.IDSource
	now      func() time.Time
	seq      uint64
	applied  uint64 // ticket of the run that last set state
	inflight bool
	cancel   context.CancelFunc
	state    State
	archive  []byte
	settings DisplaySettings
}

// NewSession creates a session backed by the given history store
func NewSession(history ports.HistoryStore) *Session {
	return &Session{
		history: history,
		now:     time.Now,
	}
}

// SetClock replaces the time source used to stamp results
func (s *Session) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Begin starts a new pipeline run. The previous run, if still in flight, has
// its context cancelled and its result will be discarded.
func (s *Session) Begin(ctx context.Context) (context.Context, Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	s.inflight = true
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	return runCtx, Ticket{ID: s.seq}
}

// Processing reports whether the latest run has not finished yet
func (s *Session) Processing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight
}

// IsLatest reports whether t is the most recently issued ticket
func (s *Session) IsLatest(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.ID == s.seq
}

// CommitOpen applies an opened input: the tree and members are replaced, the
// default output becomes current and is appended to history. Returns false
// without touching state when t is stale.
func (s *Session) CommitOpen(t Ticket, opened *Opened) (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID != s.seq || opened == nil || opened.Output == nil {
		return Result{}, false
	}
	s.finish()

	result := s.stamp(opened.Output)
	s.applyOpen(t, opened, result)
	return result, true
}

// applyOpen must be called with mu held
func (s *Session) applyOpen(t Ticket, opened *Opened, result Result) {
	s.applied = t.ID
	s.archive = opened.Archive
	s.state = State{
		Current:  &result,
		Input:    opened.Name,
		Kind:     opened.Kind,
		Members:  opened.Members,
		Tree:     opened.Tree,
		Selected: opened.Selected,
	}
}

// CommitMember applies the result of decompiling one member of the open
// archive. Returns false without touching state when t is stale.
func (s *Session) CommitMember(t Ticket, out *Decompiled) (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID != s.seq || out == nil {
		return Result{}, false
	}
	s.finish()

	result := s.stamp(out)
	s.applied = t.ID
	s.state.Current = &result
	s.state.Selected = out.FileName
	return result, true
}

// Fail ends run t without changing any state
func (s *Session) Fail(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == s.seq {
		s.finish()
	}
}

// finish must be called with mu held
func (s *Session) finish() {
	s.inflight = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// stamp must be called with mu held
func (s *Session) stamp(out *Decompiled) Result {
	at := s.now()
	result := domain.NewResult(s.ids.Next(at), out.FileName, out.Code, out.Size, at)
	s.history.Append(result)
	return result
}

// Track issues a ticket for a run that must not cancel, or be cancelled by,
// other runs. Pair it with Record.
func (s *Session) Track() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return Ticket{ID: s.seq}
}

// Record stamps the output of a tracked run and appends it to history. The
// run becomes the current state unless a run issued after it was already
// applied; current reports which.
func (s *Session) Record(t Ticket, opened *Opened) (result Result, current bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if opened == nil || opened.Output == nil {
		return Result{}, false
	}
	result = s.stamp(opened.Output)
	if t.ID < s.applied {
		return result, false
	}
	s.applyOpen(t, opened, result)
	return result, true
}

// RunOpen runs exec under a new ticket and commits its output
func (s *Session) RunOpen(ctx context.Context, exec func(context.Context) (*Opened, error)) (Result, error) {
	runCtx, t := s.Begin(ctx)
	opened, err := exec(runCtx)
	if err != nil {
		s.Fail(t)
		return Result{}, err
	}
	result, ok := s.CommitOpen(t, opened)
	if !ok {
		return Result{}, ErrSuperseded
	}
	return result, nil
}

// RunMember runs exec under a new ticket and commits its output
func (s *Session) RunMember(ctx context.Context, exec func(context.Context) (*Decompiled, error)) (Result, error) {
	runCtx, t := s.Begin(ctx)
	out, err := exec(runCtx)
	if err != nil {
		s.Fail(t)
		return Result{}, err
	}
	result, ok := s.CommitMember(t, out)
	if !ok {
		return Result{}, ErrSuperseded
	}
	return result, nil
}

// State returns a snapshot of the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Members = append([]string(nil), s.state.Members...)
	return st
}

// Archive returns the bytes of the open archive, nil when none is open
func (s *Session) Archive() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.archive
}

// History returns past results, newest first
func (s *Session) History() []Result {
	return s.history.List()
}

// ClearHistory empties the history log
func (s *Session) ClearHistory() {
	s.history.Clear()
}

// LoadHistory makes a past result current again. History is not modified.
func (s *Session) LoadHistory(id string) (Result, error) {
	if err := ValidateRequired("resultID", id); err != nil {
		return Result{}, err
	}
	result, ok := s.history.Get(id)
	if !ok {
		return Result{}, fmt.Errorf("history entry %s: %w", id, ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// runs issued before now must not overwrite the loaded entry
	s.seq++
	s.applied = s.seq
	if s.inflight {
		s.finish()
	}
	s.state.Current = &result
	s.state.Selected = ""
	if s.state.Tree != nil {
		if id, ok := s.state.Tree.Find(result.FileName); ok && !s.state.Tree.Node(id).IsDirectory {
			s.state.Selected = result.FileName
		}
	}
	return result, nil
}

// Settings returns the current display settings
func (s *Session) Settings() DisplaySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSettings replaces the display settings
func (s *Session) SetSettings(settings DisplaySettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Rendered returns the current code formatted for display, or "" when
// nothing is loaded
func (s *Session) Rendered() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Current == nil {
		return ""
	}
	return s.settings.Format(s.state.Current.Code)
}
