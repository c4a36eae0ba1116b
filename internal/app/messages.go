package app

import "fmt"

// Validation messages returned inside *domain.ValidationError.
const (
	MsgListNameLength = "The list name must be between 1 and 100 characters."
	MsgListNameUnique = "The list name must be unique."
	MsgTodoNameLength = "The todo name must be between 1 and 100 characters."
	MsgTodoNameUnique = "The todo name must be unique."
)

// Flash messages shown on the next rendered page.
const (
	MsgListNotFound = "The specified list was not found."
	MsgTodoNotFound = "The specified todo was not found."
	MsgFailure      = "Something went wrong. Please try again."
)

func ListCreatedMessage(name string) string {
	return fmt.Sprintf("The '%s' list has been created.", name)
}

func ListUpdatedMessage(name string) string {
	return fmt.Sprintf("The '%s' list has been updated.", name)
}

func ListDeletedMessage(name string) string {
	return fmt.Sprintf("The '%s' list has been deleted.", name)
}

func TodoAddedMessage(todoName, listName string) string {
	return fmt.Sprintf("'%s' was added to the '%s' list.", todoName, listName)
}

func TodoDeletedMessage(todoName, listName string) string {
	return fmt.Sprintf("'%s' has been deleted from the '%s' list.", todoName, listName)
}

// TodoStatusMessage reports the todo's new state: completed or unchecked.
func TodoStatusMessage(todoName string, completed bool) string {
	status := "unchecked"
	if completed {
		status = "completed"
	}
	return fmt.Sprintf("'%s' has been %s.", todoName, status)
}

// CompleteAllMessage reports which way CompleteAll went.
func CompleteAllMessage(listName string, completed bool) string {
	if completed {
		return fmt.Sprintf("All items on the '%s' list have been marked as completed.", listName)
	}
	return fmt.Sprintf("All items on the '%s' list have been unchecked.", listName)
}
