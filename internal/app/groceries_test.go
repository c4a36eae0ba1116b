package app_test

import (
	"context"
	"testing"

	"github.com/fugu-chop/todo-db/internal/adapters/store/memory"
	"github.com/fugu-chop/todo-db/internal/app"
)

func TestListService_GroceriesWithMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := app.NewListService(memory.New(), nil)

	l, err := svc.CreateList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	if _, err := svc.CreateList(ctx, "Groceries"); err == nil {
		t.Error("CreateList(duplicate) error = nil, want validation error")
	}

	_, milk, err := svc.AddTodo(ctx, l.ID, "Milk")
	if err != nil {
		t.Fatalf("AddTodo(Milk) error = %v", err)
	}
	_, eggs, err := svc.AddTodo(ctx, l.ID, "Eggs")
	if err != nil {
		t.Fatalf("AddTodo(Eggs) error = %v", err)
	}

	if _, err := svc.SetTodoStatus(ctx, l.ID, milk.ID, true); err != nil {
		t.Fatalf("SetTodoStatus(Milk) error = %v", err)
	}
	got, _ := svc.GetList(ctx, l.ID)
	if got.AllComplete() {
		t.Error("AllComplete() = true with Eggs outstanding")
	}
	if got.Todos[0].Name != "Eggs" {
		t.Errorf("first todo = %q, want the incomplete Eggs", got.Todos[0].Name)
	}

	if _, err := svc.ToggleTodo(ctx, l.ID, eggs.ID); err != nil {
		t.Fatalf("ToggleTodo(Eggs) error = %v", err)
	}
	got, _ = svc.GetList(ctx, l.ID)
	if !got.AllComplete() {
		t.Error("AllComplete() = false with every todo completed")
	}

	summaries, err := svc.ListLists(ctx)
	if err != nil {
		t.Fatalf("ListLists() error = %v", err)
	}
	if len(summaries) != 1 || summaries[0].TodosCount != 2 || summaries[0].TodosRemainingCount != 0 {
		t.Errorf("ListLists() = %+v, want one list with 2 todos and 0 remaining", summaries)
	}
}
