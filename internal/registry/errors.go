package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateTask is returned by AddTask when the ID is already registered.
	ErrDuplicateTask = errors.New("duplicate task")
	// ErrUnknownTask is returned when an operation names an unregistered ID.
	ErrUnknownTask = errors.New("unknown task")
	// ErrSelfDependency is returned by AddDependency when a task names itself.
	ErrSelfDependency = errors.New("self dependency")
	// ErrCyclicDependency is matched by the *CycleError returned from Schedule.
	ErrCyclicDependency = errors.New("cyclic dependency detected")
)

// Error is returned by registration calls. Kind is one of the sentinel
// errors above and is what errors.Is matches against.
type Error struct {
	Kind   error
	TaskID string
	Msg    string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s: %q", e.Kind.Error(), e.TaskID)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// CycleError reports a dependency cycle found by Schedule.
//
// TaskID is the task at which the traversal re-entered the cycle. Path lists
// the cycle from that task back to itself, following "depends on" edges.
type CycleError struct {
	TaskID string
	Path   []string
}

func (e *CycleError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s involving task %q", ErrCyclicDependency.Error(), e.TaskID)
	if len(e.Path) > 0 {
		msg += ": " + strings.Join(e.Path, " -> ")
	}
	return msg
}

func (e *CycleError) Unwrap() error { return ErrCyclicDependency }

func duplicateTask(id string) error {
	return &Error{Kind: ErrDuplicateTask, TaskID: id, Msg: fmt.Sprintf("task with ID %q already exists", id)}
}

func unknownTask(id string) error {
	return &Error{Kind: ErrUnknownTask, TaskID: id, Msg: fmt.Sprintf("task %q does not exist", id)}
}

func selfDependency(id string) error {
	return &Error{Kind: ErrSelfDependency, TaskID: id, Msg: fmt.Sprintf("task %q cannot depend on itself", id)}
}
