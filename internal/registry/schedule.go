package registry

import "github.com/vk/taskorder/internal/task"

type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	visited
)

// frame is one entry of the explicit DFS stack: the task being expanded and
// the index of its next edge to follow.
type frame struct {
	id   string
	next int
}

// Schedule returns every registered task in an order where each task appears
// after all the tasks it depends on.
//
// Independent tasks keep their insertion order. An empty registry yields an
// empty, non-nil slice. If the edges contain a cycle, Schedule returns a
// *CycleError and the registry is left unchanged.
func (r *Registry) Schedule() ([]task.Task, error) {
	state := make(map[string]visitState, len(r.order))
	out := make([]task.Task, 0, len(r.order))
	var stack []frame

	for _, root := range r.order {
		if state[root] == visited {
			continue
		}

		state[root] = inProgress
		stack = append(stack[:0], frame{id: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := r.deps[top.id]

			if top.next < len(deps) {
				dep := deps[top.next]
				top.next++

				switch state[dep] {
				case visited:
					// Already emitted, or a repeated edge.
				case inProgress:
					return nil, cycleFrom(stack, dep)
				default:
					state[dep] = inProgress
					stack = append(stack, frame{id: dep})
				}
				continue
			}

			// All dependencies resolved: emit in post-order.
			state[top.id] = visited
			out = append(out, r.tasks[top.id])
			stack = stack[:len(stack)-1]
		}
	}

	return out, nil
}

// cycleFrom builds the cycle witness for a back edge to id. The stack holds
// the active path, so the cycle is the suffix starting at id.
func cycleFrom(stack []frame, id string) *CycleError {
	start := 0
	for i, f := range stack {
		if f.id == id {
			start = i
			break
		}
	}

	path := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, f.id)
	}
	path = append(path, id)

	return &CycleError{TaskID: id, Path: path}
}
