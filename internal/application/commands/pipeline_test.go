package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"jarscope/internal/application"
)

func newTestSession() (*application.Session, *mockHistory) {
	history := &mockHistory{}
	s := application.NewSession(history)
	s.SetClock(func() time.Time { return time.UnixMilli(1_700_000_000_000) })
	return s, history
}

func TestPipeline_InvalidClassLeavesStateUnchanged(t *testing.T) {
	s, history := newTestSession()
	archives := newMockArchiveReader()

	_, err := s.RunOpen(context.Background(), NewOpenBytesCommand(archives, "bad.class", []byte("hello")).Execute)

	var decErr *application.DecompileError
	if !errors.As(err, &decErr) || !errors.Is(err, application.ErrInvalidFormat) {
		t.Fatalf("expected invalid format DecompileError, got %v", err)
	}
	notice := application.NoticeFor(err)
	if notice.Description != "bad.class is not a valid class file" {
		t.Errorf("notice = %q", notice)
	}
	if st := s.State(); st.Current != nil || st.Tree != nil {
		t.Errorf("state changed: %+v", st)
	}
	if len(history.List()) != 0 {
		t.Errorf("history changed: %v", history.List())
	}
	if s.Processing() {
		t.Error("session still processing after failure")
	}
}

func TestPipeline_NestedArchive(t *testing.T) {
	s, history := newTestSession()
	archives := newMockArchiveReader()
	archives.add("com/app/Main.class", classBytes("public static void main"))
	archives.add("com/app/util/Helper.class", classBytes("Method help"))

	result, err := s.RunOpen(context.Background(), NewOpenBytesCommand(archives, "app.jar", []byte("zip")).Execute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := s.State()
	if st.Selected != "com/app/Main.class" || st.Current == nil || st.Current.FileName != "com/app/Main.class" {
		t.Errorf("unexpected selection: %+v", st)
	}
	roots := st.Tree.Roots()
	if len(roots) != 1 || st.Tree.Node(roots[0]).Name != "com" {
		t.Fatalf("expected single com root")
	}
	app := st.Tree.Children(roots[0])
	if len(app) != 1 || st.Tree.Node(app[0]).Name != "app" {
		t.Fatalf("expected com/app directory")
	}
	if entries := history.List(); len(entries) != 1 || entries[0].ID != result.ID {
		t.Errorf("expected exactly one history entry, got %v", entries)
	}

	// selecting another member keeps the tree and adds one more entry
	_, err = s.RunMember(context.Background(), NewDecompileMemberCommand(archives, s.Archive(), "com/app/util/Helper.class").Execute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st = s.State()
	if st.Selected != "com/app/util/Helper.class" {
		t.Errorf("Selected = %q", st.Selected)
	}
	if st.Tree.Len() != 5 {
		t.Errorf("tree has %d nodes, expected 5", st.Tree.Len())
	}
	if len(history.List()) != 2 {
		t.Errorf("expected two history entries, got %d", len(history.List()))
	}
}

func TestPipeline_EmptyArchiveKeepsPreviousState(t *testing.T) {
	s, history := newTestSession()
	archives := newMockArchiveReader()
	archives.add("A.class", classBytes(""))

	if _, err := s.RunOpen(context.Background(), NewOpenBytesCommand(archives, "one.jar", []byte("zip")).Execute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.RunOpen(context.Background(), NewOpenBytesCommand(newMockArchiveReader(), "empty.jar", []byte("zip")).Execute)
	if !errors.Is(err, application.ErrEmptyArchive) {
		t.Fatalf("expected ErrEmptyArchive, got %v", err)
	}
	if application.NoticeFor(err).IsError {
		t.Error("empty archive should be an informational notice")
	}
	if st := s.State(); st.Input != "one.jar" || st.Selected != "A.class" {
		t.Errorf("previous state lost: %+v", st)
	}
	if len(history.List()) != 1 {
		t.Errorf("history changed: %d entries", len(history.List()))
	}
}

func TestPipeline_StaleResultDiscarded(t *testing.T) {
	s, history := newTestSession()
	archives := newMockArchiveReader()
	archives.add("a/First.class", classBytes("Method first"))
	archives.add("a/Second.class", classBytes("Method second"))
	archive := []byte("zip")

	firstCtx, first := s.Begin(context.Background())
	secondCtx, second := s.Begin(context.Background())

	if firstCtx.Err() == nil {
		t.Error("first run should be cancelled once a newer run begins")
	}

	out2, err := NewDecompileMemberCommand(archives, archive, "a/Second.class").Execute(secondCtx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the first run ignores cancellation and finishes late
	out1, err := NewDecompileMemberCommand(archives, archive, "a/First.class").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := s.CommitMember(second, out2); !ok {
		t.Fatal("latest result rejected")
	}
	if _, ok := s.CommitMember(first, out1); ok {
		t.Fatal("stale result applied")
	}

	if st := s.State(); st.Current.FileName != "a/Second.class" {
		t.Errorf("Current = %q, expected a/Second.class", st.Current.FileName)
	}
	if len(history.List()) != 1 {
		t.Errorf("expected one history entry, got %d", len(history.List()))
	}
}
