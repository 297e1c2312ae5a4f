package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"ltask/internal/task"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "tasks.json"), nil)
}

func TestLoad_MissingFile(t *testing.T) {
	s := tempStore(t)

	tasks, err := s.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty collection, got %d tasks", len(tasks))
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	tasks, err := s.Load()
	if err != nil {
		t.Fatalf("expected corrupt file to load as empty, got error %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty collection, got %d tasks", len(tasks))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := tempStore(t)

	want := []task.Task{
		{ID: 1, Description: "Write documentation", Completed: false},
		{ID: 2, Description: "Fix bug", Completed: true},
		{ID: 5, Description: "with \"quotes\" and\nnewline", Completed: false},
	}

	if err := s.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch\nwant %+v\ngot  %+v", want, got)
	}
}

func TestSave_EmptyCollection(t *testing.T) {
	s := tempStore(t)

	if err := s.Save(nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("expected empty array, got %q", data)
	}

	tasks, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty collection, got %d tasks", len(tasks))
	}
}

func TestSave_OverwritesPriorContents(t *testing.T) {
	s := tempStore(t)

	if err := s.Save([]task.Task{{ID: 1, Description: "a"}, {ID: 2, Description: "b"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save([]task.Task{{ID: 2, Description: "b"}}); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected only task 2 after rewrite, got %+v", got)
	}
}

func TestSave_PreservesOrder(t *testing.T) {
	s := tempStore(t)

	// Insertion order is storage order even when ids are not sorted.
	want := []task.Task{{ID: 3, Description: "c"}, {ID: 1, Description: "a"}, {ID: 2, Description: "b"}}
	if err := s.Save(want); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order not preserved\nwant %+v\ngot  %+v", want, got)
	}
}

func TestLoad_ReadFailure(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	if err := os.WriteFile(path, []byte("[]"), 0000); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path, nil)
	if _, err := s.Load(); err == nil {
		t.Error("expected error for unreadable file")
	}
}

func TestSave_WriteFailure(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "no-such-dir", "tasks.json"), nil)
	if err := s.Save([]task.Task{{ID: 1, Description: "a"}}); err == nil {
		t.Error("expected error writing into missing directory")
	}
}
