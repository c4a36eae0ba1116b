// Package dto provides the JSON API's request and response bodies and
// RFC 9457 Problem Details error responses.
package dto

import (
	"github.com/fugu-chop/todo-db/internal/domain/list"
	"github.com/fugu-chop/todo-db/internal/domain/todo"
	"github.com/fugu-chop/todo-db/internal/ports"
)

// ListSummaryResponse is one entry of GET /api/v1/lists.
type ListSummaryResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	TodosCount          int    `json:"todos_count"`
	TodosRemainingCount int    `json:"todos_remaining_count"`
	AllComplete         bool   `json:"all_complete"`
}

// ListResponse is a list with its todos in display order.
type ListResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	AllComplete bool           `json:"all_complete"`
	Todos       []TodoResponse `json:"todos"`
}

// TodoResponse is a single todo.
type TodoResponse struct {
	ID        int64  `json:"id"`
	ListID    int64  `json:"list_id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// CompleteAllResponse reports the list after a complete-all toggle.
type CompleteAllResponse struct {
	Completed bool         `json:"completed"`
	List      ListResponse `json:"list"`
}

func ToListSummaryResponses(summaries []list.Summary) []ListSummaryResponse {
	out := make([]ListSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, ListSummaryResponse{
			ID:                  s.ID,
			Name:                s.Name,
			TodosCount:          s.TodosCount,
			TodosRemainingCount: s.TodosRemainingCount,
			AllComplete:         s.AllComplete(),
		})
	}
	return out
}

func ToListResponse(l *list.List) ListResponse {
	todos := make([]TodoResponse, 0, len(l.Todos))
	for _, t := range l.Todos {
		todos = append(todos, ToTodoResponse(&t))
	}
	return ListResponse{
		ID:          l.ID,
		Name:        l.Name,
		AllComplete: l.AllComplete(),
		Todos:       todos,
	}
}

func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		ListID:    t.ListID,
		Name:      t.Name,
		Completed: t.Completed,
	}
}

func ToCompleteAllResponse(res *ports.CompleteAllResult) CompleteAllResponse {
	return CompleteAllResponse{
		Completed: res.Completed,
		List:      ToListResponse(res.List),
	}
}
