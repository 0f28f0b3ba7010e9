package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"jarscope/internal/domain"
)

type mockHistory struct {
	entries []domain.Result
}

func (m *mockHistory) Append(r domain.Result) { m.entries = append([]domain.Result{r}, m.entries...) }
func (m *mockHistory) List() []domain.Result  { return append([]domain.Result(nil), m.entries...) }
func (m *mockHistory) Clear()                 { m.entries = nil }
func (m *mockHistory) Capacity() int          { return 10 }

func (m *mockHistory) Get(id string) (domain.Result, bool) {
	for _, r := range m.entries {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Result{}, false
}

func fixedClock() func() time.Time {
	at := time.UnixMilli(1_700_000_000_000)
	return func() time.Time { return at }
}

func decompiled(name string) *Decompiled {
	return &Decompiled{FileName: name, Code: "public class X {\n}\n", Size: 2048}
}

func TestSession_CommitMember(t *testing.T) {
	history := &mockHistory{}
	s := NewSession(history)
	s.SetClock(fixedClock())

	_, t1 := s.Begin(context.Background())
	if !s.Processing() {
		t.Error("expected Processing after Begin")
	}
	r1, ok := s.CommitMember(t1, decompiled("a/A.class"))
	if !ok {
		t.Fatal("commit rejected")
	}
	if s.Processing() {
		t.Error("expected Processing to end after commit")
	}
	if r1.SizeLabel != "2.00 KB" {
		t.Errorf("SizeLabel = %q", r1.SizeLabel)
	}

	_, t2 := s.Begin(context.Background())
	r2, _ := s.CommitMember(t2, decompiled("a/B.class"))

	if r1.ID == r2.ID {
		t.Errorf("IDs must be unique even with a frozen clock: %s", r1.ID)
	}
	if got := history.List(); len(got) != 2 || got[0].ID != r2.ID {
		t.Errorf("history not newest first: %v", got)
	}
}

func TestSession_StaleTicket(t *testing.T) {
	history := &mockHistory{}
	s := NewSession(history)

	ctx1, t1 := s.Begin(context.Background())
	_, t2 := s.Begin(context.Background())

	if !errors.Is(ctx1.Err(), context.Canceled) {
		t.Error("older run context not cancelled")
	}
	if s.IsLatest(t1) || !s.IsLatest(t2) {
		t.Error("IsLatest mismatch")
	}
	if _, ok := s.CommitMember(t1, decompiled("old.class")); ok {
		t.Error("stale commit accepted")
	}
	if s.State().Current != nil {
		t.Error("stale commit changed state")
	}

	s.Fail(t1)
	if !s.Processing() {
		t.Error("stale Fail must not end the latest run")
	}
	s.Fail(t2)
	if s.Processing() {
		t.Error("Fail of latest run must end processing")
	}
	if len(history.List()) != 0 {
		t.Error("failed runs must not reach history")
	}
}

func TestSession_RunOpenSuperseded(t *testing.T) {
	s := NewSession(&mockHistory{})

	_, err := s.RunOpen(context.Background(), func(ctx context.Context) (*Opened, error) {
		// a newer run starts while this one is working
		_, newer := s.Begin(context.Background())
		defer s.Fail(newer)
		return &Opened{Name: "a.class", Kind: InputClass, Output: decompiled("a.class")}, nil
	})
	if !errors.Is(err, ErrSuperseded) {
		t.Errorf("expected ErrSuperseded, got %v", err)
	}
	if s.State().Current != nil {
		t.Error("superseded run changed state")
	}
}

func TestSession_RunOpenReplacesTree(t *testing.T) {
	s := NewSession(&mockHistory{})

	opened := &Opened{
		Name:     "app.jar",
		Kind:     InputArchive,
		Archive:  []byte("zip"),
		Members:  []string{"a/A.class"},
		Tree:     BuildPathTree([]string{"a/A.class"}),
		Selected: "a/A.class",
		Output:   decompiled("a/A.class"),
	}
	if _, err := s.RunOpen(context.Background(), func(context.Context) (*Opened, error) { return opened, nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(s.Archive()) != "zip" || s.State().Tree == nil {
		t.Fatal("archive state not applied")
	}

	classOnly := &Opened{Name: "B.class", Kind: InputClass, Output: decompiled("B.class")}
	if _, err := s.RunOpen(context.Background(), func(context.Context) (*Opened, error) { return classOnly, nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := s.State()
	if st.Tree != nil || s.Archive() != nil || len(st.Members) != 0 {
		t.Errorf("class input must clear archive state: %+v", st)
	}
	if st.Kind != InputClass || st.Current.FileName != "B.class" {
		t.Errorf("unexpected state: %+v", st)
	}
}

func TestSession_LoadHistory(t *testing.T) {
	history := &mockHistory{}
	s := NewSession(history)

	_, t1 := s.Begin(context.Background())
	first, _ := s.CommitMember(t1, decompiled("a/A.class"))
	_, t2 := s.Begin(context.Background())
	s.CommitMember(t2, decompiled("a/B.class"))

	loaded, err := s.LoadHistory(first.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.ID != first.ID || s.State().Current.ID != first.ID {
		t.Error("history entry not made current")
	}
	if len(history.List()) != 2 {
		t.Error("loading must not modify history")
	}

	if _, err := s.LoadHistory("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.LoadHistory(""); err == nil {
		t.Error("expected validation error")
	}
}

func TestSession_LoadHistorySupersedesInflight(t *testing.T) {
	history := &mockHistory{}
	s := NewSession(history)

	_, t1 := s.Begin(context.Background())
	first, _ := s.CommitMember(t1, decompiled("a/A.class"))

	_, pending := s.Begin(context.Background())
	if _, err := s.LoadHistory(first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.CommitMember(pending, decompiled("late.class")); ok {
		t.Error("run started before loading history must be discarded")
	}
	if s.State().Current.ID != first.ID {
		t.Error("loaded entry was overwritten")
	}
}

func TestSession_RenderedAndClear(t *testing.T) {
	history := &mockHistory{}
	s := NewSession(history)
	if s.Rendered() != "" {
		t.Error("expected empty render before any result")
	}

	_, tk := s.Begin(context.Background())
	s.CommitMember(tk, &Decompiled{FileName: "A.class", Code: "a\nb\n"})
	s.SetSettings(DisplaySettings{ShowLineNumbers: true})

	if got := s.Rendered(); got != "1 | a\n2 | b\n" {
		t.Errorf("Rendered() = %q", got)
	}
	if s.State().Current.Code != "a\nb\n" {
		t.Error("settings must not modify the stored code")
	}

	s.ClearHistory()
	if len(s.History()) != 0 {
		t.Error("history not cleared")
	}
	if s.State().Current == nil {
		t.Error("clearing history must keep the current result")
	}
}

func openedArchive(name string, members ...string) *Opened {
	return &Opened{
		Name:     name,
		Kind:     InputArchive,
		Members:  members,
		Tree:     BuildPathTree(members),
		Selected: members[0],
		Output:   decompiled(members[0]),
	}
}

func TestSession_RecordOverlappingRuns(t *testing.T) {
	history := &mockHistory{}
	s := NewSession(history)

	early := s.Track()
	late := s.Track()

	lateResult, current := s.Record(late, openedArchive("b.jar", "b/B.class"))
	if !current {
		t.Error("latest run should become current")
	}
	earlyResult, current := s.Record(early, openedArchive("a.jar", "a/A.class"))
	if current {
		t.Error("older run must not replace a newer one")
	}

	if earlyResult.FileName != "a/A.class" {
		t.Errorf("older run lost its own result: %q", earlyResult.FileName)
	}
	if len(history.List()) != 2 {
		t.Errorf("history has %d entries, want 2", len(history.List()))
	}
	if st := s.State(); st.Input != "b.jar" || st.Current.ID != lateResult.ID {
		t.Errorf("state = %s / %v, want b.jar", st.Input, st.Current)
	}
}

func TestSession_RecordAfterLoadHistory(t *testing.T) {
	s := NewSession(&mockHistory{})

	first, _ := s.Record(s.Track(), openedArchive("a.jar", "a/A.class"))
	pending := s.Track()
	if _, err := s.LoadHistory(first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, current := s.Record(pending, openedArchive("b.jar", "b/B.class")); current {
		t.Error("run issued before loading history must not become current")
	}
	if s.State().Current.ID != first.ID {
		t.Error("loaded entry was overwritten")
	}
}

func TestSession_LoadHistorySelection(t *testing.T) {
	tests := []struct {
		name         string
		loaded       string
		wantSelected string
	}{
		{"member of the open archive", "com/app/Main.class", "com/app/Main.class"},
		{"result from another input", "Other.class", ""},
		{"directory path", "com/app", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := &mockHistory{}
			s := NewSession(history)

			_, t1 := s.Begin(context.Background())
			old, _ := s.CommitMember(t1, decompiled(tt.loaded))

			_, t2 := s.Begin(context.Background())
			s.CommitOpen(t2, openedArchive("app.jar", "com/app/Util.class", "com/app/Main.class"))
			if s.State().Selected != "com/app/Util.class" {
				t.Fatalf("setup: selected = %q", s.State().Selected)
			}

			if _, err := s.LoadHistory(old.ID); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			st := s.State()
			if st.Selected != tt.wantSelected {
				t.Errorf("Selected = %q, want %q", st.Selected, tt.wantSelected)
			}
			if st.Tree == nil {
				t.Error("the open archive tree should stay browsable")
			}
		})
	}
}
