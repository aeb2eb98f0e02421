// Package registry is the dependency graph engine: it stores tasks and their
// "depends-on" edges and turns them into a single execution order.
//
// # Model
//
// A Registry holds an insertion-ordered set of tasks and, per task, the list
// of task IDs it depends on, in the order the edges were declared. Edges are
// validated when they are added, so every ID inside an edge list always refers
// to a registered task. Repeated edges are kept; the scheduler treats them as
// redundant.
//
// # Scheduling
//
// Schedule runs a post-order depth-first traversal. Roots are visited in
// insertion order and each task's edges in declaration order, so the result is
// deterministic: two independent tasks appear in the order they were added.
// The traversal uses an explicit stack instead of recursion. Revisiting a task
// that is still on the stack means a cycle, reported as a *CycleError.
//
// Cycles are only detected by Schedule, never by AddDependency. A failed
// Schedule leaves the registry untouched, so callers may fix an edge and retry.
//
// # Thread-Safety
//
// Registry performs no locking. Callers that share one across goroutines
// must serialise access themselves or use Synchronized.
package registry
