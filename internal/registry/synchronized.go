package registry

import (
	"sync"

	"github.com/vk/taskorder/internal/task"
)

// Synchronized guards a Registry with a sync.RWMutex so one instance can be
// shared between goroutines. Mutations take the write lock, queries the read
// lock. It has the same semantics as Registry.
type Synchronized struct {
	mu  sync.RWMutex
	reg *Registry
}

// NewSynchronized creates an empty, lock-guarded registry.
func NewSynchronized() *Synchronized {
	return &Synchronized{reg: New()}
}

// AddTask registers t under the write lock. See Registry.AddTask.
func (s *Synchronized) AddTask(t task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.AddTask(t)
}

// AddDependency records an edge under the write lock. See Registry.AddDependency.
func (s *Synchronized) AddDependency(taskID, dependsOnID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.AddDependency(taskID, dependsOnID)
}

// Clear removes all tasks and edges.
func (s *Synchronized) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.Clear()
}

// Schedule computes the execution order under the read lock.
func (s *Synchronized) Schedule() ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Schedule()
}

// TotalExecutionTime returns the saturating sum of all task costs.
func (s *Synchronized) TotalExecutionTime() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.TotalExecutionTime()
}

// Len returns the number of registered tasks.
func (s *Synchronized) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Len()
}

// Task looks up a task by ID.
func (s *Synchronized) Task(id string) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Task(id)
}

// Tasks returns the registered tasks in insertion order.
func (s *Synchronized) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Tasks()
}

// DependenciesOf returns a copy of the edge list of id.
func (s *Synchronized) DependenciesOf(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.DependenciesOf(id)
}
