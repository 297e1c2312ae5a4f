// Package task defines the task entity and id assignment rules.
package task

import "fmt"

// Task represents a single tracked task.
type Task struct {
	ID          uint32 `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Status returns the display status word for the task.
func (t Task) Status() string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}

// Subject returns the string fuzzy search runs against:
// id, description and status word, space separated.
func (t Task) Subject() string {
	return fmt.Sprintf("%d %s %s", t.ID, t.Description, t.Status())
}

// NextID returns the id for a newly added task: one past the highest
// existing id, starting at 1 for an empty collection. Ids are never
// reused after deletion.
func NextID(tasks []Task) uint32 {
	var max uint32
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// Find returns the index of the first task with the given id, or -1.
func Find(tasks []Task, id uint32) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
