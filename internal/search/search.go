// Package search implements fuzzy matching over task subjects.
package search

import (
	"github.com/sahilm/fuzzy"

	"ltask/internal/task"
)

// Match reports whether the characters of query appear in order (not
// necessarily contiguously) within subject, and the relevance score of
// the match. The score is only meaningful when ok is true.
func Match(query, subject string) (score int, ok bool) {
	matches := fuzzy.Find(query, []string{subject})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}

// Filter returns the tasks whose subject matches query, preserving the
// collection order. Any match is included regardless of score; results
// are not re-sorted by relevance.
func Filter(query string, tasks []task.Task) []task.Task {
	var matched []task.Task
	for _, t := range tasks {
		if _, ok := Match(query, t.Subject()); ok {
			matched = append(matched, t)
		}
	}
	return matched
}
