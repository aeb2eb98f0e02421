package registry

import (
	"math"

	"github.com/vk/taskorder/internal/task"
)

// Registry stores tasks and the dependency edges between them.
type Registry struct {
	// order holds task IDs in the order they were added.
	order []string
	// tasks stores every registered task, keyed by ID.
	tasks map[string]task.Task
	// deps maps a task ID to the IDs it depends on, in declaration order.
	deps map[string][]string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		tasks: make(map[string]task.Task),
		deps:  make(map[string][]string),
	}
}

// AddTask registers t. It returns ErrDuplicateTask, leaving the registry
// unchanged, if a task with the same ID is already present.
func (r *Registry) AddTask(t task.Task) error {
	id := t.ID()
	if _, exists := r.tasks[id]; exists {
		return duplicateTask(id)
	}

	r.tasks[id] = t
	r.order = append(r.order, id)
	if _, ok := r.deps[id]; !ok {
		r.deps[id] = nil
	}
	return nil
}

// AddDependency records that taskID must run after dependsOnID.
//
// Both tasks must be registered (ErrUnknownTask) and must differ
// (ErrSelfDependency). Cycles are not checked here; see Schedule. Adding the
// same edge twice is accepted.
func (r *Registry) AddDependency(taskID, dependsOnID string) error {
	if _, ok := r.tasks[taskID]; !ok {
		return unknownTask(taskID)
	}
	if _, ok := r.tasks[dependsOnID]; !ok {
		return unknownTask(dependsOnID)
	}
	if taskID == dependsOnID {
		return selfDependency(taskID)
	}

	r.deps[taskID] = append(r.deps[taskID], dependsOnID)
	return nil
}

// TotalExecutionTime sums the cost of every registered task.
//
// The sum saturates at math.MaxInt64 instead of wrapping.
func (r *Registry) TotalExecutionTime() int64 {
	var total int64
	for _, t := range r.tasks {
		c := t.Cost()
		if total > math.MaxInt64-c {
			return math.MaxInt64
		}
		total += c
	}
	return total
}

// Clear removes every task and edge.
func (r *Registry) Clear() {
	r.order = nil
	r.tasks = make(map[string]task.Task)
	r.deps = make(map[string][]string)
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.order)
}

// Task looks up a registered task by ID.
func (r *Registry) Task(id string) (task.Task, bool) {
	t, ok := r.tasks[id]
	return t, ok
}

// Tasks returns the registered tasks in insertion order.
func (r *Registry) Tasks() []task.Task {
	out := make([]task.Task, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tasks[id])
	}
	return out
}

// DependenciesOf returns a copy of the edge list of id, in declaration order.
func (r *Registry) DependenciesOf(id string) ([]string, error) {
	if _, ok := r.tasks[id]; !ok {
		return nil, unknownTask(id)
	}
	deps := r.deps[id]
	out := make([]string, len(deps))
	copy(out, deps)
	return out, nil
}
