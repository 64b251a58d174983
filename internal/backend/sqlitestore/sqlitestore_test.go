package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := New(context.Background(), path, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGet_Missing(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "todos.db"))

	_, ok, err := s.Get(context.Background(), "todos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected missing key")
	}
}

func TestSet_Upserts(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "todos.db"))
	ctx := context.Background()

	if err := s.Set(ctx, "todos", []byte(`[{"id":1,"text":"a","completed":false}]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Set(ctx, "todos", []byte(`[]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := s.Get(ctx, "todos")
	if err != nil || !ok {
		t.Fatalf("expected value, got ok=%v err=%v", ok, err)
	}
	if string(got) != "[]" {
		t.Errorf("expected [], got %s", got)
	}

	var rows int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected 1 row, got %d", rows)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "todos.db")
	ctx := context.Background()

	first, err := New(ctx, path, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := first.Set(ctx, "todos", []byte(`[{"id":2,"text":"b","completed":true}]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := openTestStore(t, path)
	got, ok, err := second.Get(ctx, "todos")
	if err != nil || !ok {
		t.Fatalf("expected value, got ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":2,"text":"b","completed":true}]` {
		t.Errorf("unexpected value: %s", got)
	}
}
