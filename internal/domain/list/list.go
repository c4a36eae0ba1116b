// Package list holds the List aggregate, the summary row used on the
// overview page, and the completion rules shared by both.
package list

import (
	"slices"

	"github.com/fugu-chop/todo-db/internal/domain/todo"
)

// List is a named collection of todos. Todos are ordered by id as stored;
// use todo.Sort for display order.
type List struct {
	ID    int64
	Name  string
	Todos []todo.Todo
}

// AllComplete is true when the list has at least one todo and every todo is
// completed. An empty list is never complete.
func (l *List) AllComplete() bool {
	return len(l.Todos) > 0 && todo.Remaining(l.Todos) == 0
}

// TodosRemaining counts incomplete todos.
func (l *List) TodosRemaining() int {
	return todo.Remaining(l.Todos)
}

// FindTodo returns the todo with the given id.
func (l *List) FindTodo(id int64) (todo.Todo, bool) {
	return todo.Find(l.Todos, id)
}

// Summary is a list without its todos, carrying the counts the overview needs.
type Summary struct {
	ID                  int64
	Name                string
	TodosCount          int
	TodosRemainingCount int
}

// AllComplete applies the List.AllComplete rule to the counts.
func (s Summary) AllComplete() bool {
	return s.TodosCount > 0 && s.TodosRemainingCount == 0
}

// Summarize builds the summary row for l.
func Summarize(l *List) Summary {
	return Summary{
		ID:                  l.ID,
		Name:                l.Name,
		TodosCount:          len(l.Todos),
		TodosRemainingCount: l.TodosRemaining(),
	}
}

// SortSummaries returns a copy with lists that are not all complete first,
// preserving relative order inside each group.
func SortSummaries(summaries []Summary) []Summary {
	sorted := slices.Clone(summaries)
	slices.SortStableFunc(sorted, func(a, b Summary) int {
		return rank(a.AllComplete()) - rank(b.AllComplete())
	})
	return sorted
}

func rank(complete bool) int {
	if complete {
		return 1
	}
	return 0
}

// NameTaken reports whether any list already uses name. Matching is
// case-sensitive.
func NameTaken(summaries []Summary, name string) bool {
	return slices.ContainsFunc(summaries, func(s Summary) bool { return s.Name == name })
}

// NameTakenByOther is NameTaken ignoring the list being renamed.
func NameTakenByOther(summaries []Summary, name string, id int64) bool {
	return slices.ContainsFunc(summaries, func(s Summary) bool {
		return s.Name == name && s.ID != id
	})
}
