package task

import "testing"

func TestNextID_Empty(t *testing.T) {
	if got := NextID(nil); got != 1 {
		t.Errorf("expected 1 for empty collection, got %d", got)
	}
}

func TestNextID_MaxPlusOne(t *testing.T) {
	tasks := []Task{
		{ID: 1, Description: "a"},
		{ID: 5, Description: "b"},
		{ID: 3, Description: "c"},
	}
	if got := NextID(tasks); got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
}

func TestNextID_NeverReusesAfterDeletion(t *testing.T) {
	tasks := []Task{{ID: 1}, {ID: 2}, {ID: 3}}
	// Remove the middle task; the next id must still be max+1.
	tasks = append(tasks[:1], tasks[2:]...)
	if got := NextID(tasks); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
}

func TestFind(t *testing.T) {
	tasks := []Task{{ID: 1}, {ID: 7}, {ID: 2}}

	if i := Find(tasks, 7); i != 1 {
		t.Errorf("expected index 1, got %d", i)
	}
	if i := Find(tasks, 99); i != -1 {
		t.Errorf("expected -1 for missing id, got %d", i)
	}
	if i := Find(nil, 1); i != -1 {
		t.Errorf("expected -1 for empty collection, got %d", i)
	}
}

func TestStatus(t *testing.T) {
	if got := (Task{}).Status(); got != "Pending" {
		t.Errorf("expected Pending, got %q", got)
	}
	if got := (Task{Completed: true}).Status(); got != "Completed" {
		t.Errorf("expected Completed, got %q", got)
	}
}

func TestSubject(t *testing.T) {
	tk := Task{ID: 2, Description: "Fix bug"}
	if got := tk.Subject(); got != "2 Fix bug Pending" {
		t.Errorf("unexpected subject %q", got)
	}

	tk.Completed = true
	if got := tk.Subject(); got != "2 Fix bug Completed" {
		t.Errorf("unexpected subject %q", got)
	}
}
