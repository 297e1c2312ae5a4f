package output

import (
	"bytes"
	"testing"

	"ltask/internal/task"
)

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	FormatTask(&buf, task.Task{ID: 3, Description: "Fix bug", Completed: true})
	if buf.String() != "3. Fix bug - Completed\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatTask_NormalizesDescription(t *testing.T) {
	var buf bytes.Buffer
	FormatTask(&buf, task.Task{ID: 1, Description: "a\nb"})
	if buf.String() != "1. a b - Pending\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	FormatTask(&buf, task.Task{ID: 2, Description: "   "})
	if buf.String() != "2. (untitled) - Pending\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatTasks_Order(t *testing.T) {
	var buf bytes.Buffer
	FormatTasks(&buf, []task.Task{
		{ID: 2, Description: "b"},
		{ID: 1, Description: "a"},
	})
	expected := "2. b - Pending\n1. a - Pending\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
