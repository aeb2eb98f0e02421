// Package task defines the immutable unit of work that the registry orders.
package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTask is returned by New when an ID, name or cost violates the
// construction rules.
var ErrInvalidTask = errors.New("invalid task")

// Task is a named unit of work with an estimated execution cost.
//
// A Task is a value: its fields are fixed at construction and there are no
// setters. Identity is defined by ID alone, see SameAs.
type Task struct {
	id   string
	name string
	cost int64
}

// New validates its arguments and returns a Task. It returns an error wrapping
// ErrInvalidTask if id or name is blank, or if cost is negative.
func New(id, name string, cost int64) (Task, error) {
	if strings.TrimSpace(id) == "" {
		return Task{}, fmt.Errorf("%w: task ID cannot be empty", ErrInvalidTask)
	}
	if strings.TrimSpace(name) == "" {
		return Task{}, fmt.Errorf("%w: task name cannot be empty", ErrInvalidTask)
	}
	if cost < 0 {
		return Task{}, fmt.Errorf("%w: execution cost cannot be negative (got %d)", ErrInvalidTask, cost)
	}
	return Task{id: id, name: name, cost: cost}, nil
}

// ID returns the task's unique key.
func (t Task) ID() string { return t.id }

// Name returns the display name.
func (t Task) Name() string { return t.name }

// Cost returns the estimated execution cost.
func (t Task) Cost() int64 { return t.cost }

// SameAs reports whether t and other refer to the same task, i.e. share an ID.
// Name and cost are not compared.
func (t Task) SameAs(other Task) bool {
	return t.id == other.id
}

// String renders the task for diagnostics. Every field appears verbatim.
func (t Task) String() string {
	return fmt.Sprintf("Task{id=%q, name=%q, cost=%d}", t.id, t.name, t.cost)
}

// IndexOf returns the position of the task with the given ID in tasks, or -1.
func IndexOf(tasks []Task, id string) int {
	for i, t := range tasks {
		if t.id == id {
			return i
		}
	}
	return -1
}

// IDs extracts the IDs of tasks, preserving order.
func IDs(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.id)
	}
	return out
}
