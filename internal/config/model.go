package config

// Model is the unified, format-agnostic representation of every task file
// that was loaded.
type Model struct {
	// Tasks are kept in the order they were read: files in lexical path
	// order, blocks in source order within a file.
	Tasks []*TaskDefinition
}

// TaskDefinition is the format-agnostic representation of one `task` block.
type TaskDefinition struct {
	ID        string
	Name      string
	Cost      int64
	DependsOn []string
	// Source is the file the definition was read from, for error messages.
	Source string
}

// DependencyCount returns the total number of declared edges.
func (m *Model) DependencyCount() int {
	n := 0
	for _, t := range m.Tasks {
		n += len(t.DependsOn)
	}
	return n
}
