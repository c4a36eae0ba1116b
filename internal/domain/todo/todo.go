// Package todo holds the Todo entity and the ordering rules applied when
// todos are displayed.
package todo

import "slices"

// Todo is a named item belonging to exactly one list.
type Todo struct {
	ID        int64
	ListID    int64
	Name      string
	Completed bool
}

// Sort returns a copy of todos with incomplete items before completed ones.
// Relative order inside each group is preserved.
func Sort(todos []Todo) []Todo {
	sorted := slices.Clone(todos)
	slices.SortStableFunc(sorted, func(a, b Todo) int {
		return rank(a.Completed) - rank(b.Completed)
	})
	return sorted
}

func rank(completed bool) int {
	if completed {
		return 1
	}
	return 0
}

// Remaining counts the todos not yet completed.
func Remaining(todos []Todo) int {
	n := 0
	for _, t := range todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Find returns the todo with the given id.
func Find(todos []Todo, id int64) (Todo, bool) {
	i := slices.IndexFunc(todos, func(t Todo) bool { return t.ID == id })
	if i < 0 {
		return Todo{}, false
	}
	return todos[i], true
}

// NameTaken reports whether any todo already uses name. Matching is exact
// and case-sensitive.
func NameTaken(todos []Todo, name string) bool {
	return slices.ContainsFunc(todos, func(t Todo) bool { return t.Name == name })
}
