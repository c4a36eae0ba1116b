// Package domain contains types shared across the entity sub-packages
// (domain/list, domain/todo): sentinel errors, the validation error type,
// name rules and id assignment for stores without sequences.
package domain
