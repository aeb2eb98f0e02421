package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/taskorder/internal/task"
)

type reportTask struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int64  `json:"cost"`
}

type report struct {
	Order     []reportTask `json:"order"`
	TotalCost int64        `json:"total_cost"`
}

// writeReport renders the schedule in the requested format.
func writeReport(w io.Writer, format string, schedule []task.Task, total int64) error {
	if format == FormatJSON {
		r := report{Order: make([]reportTask, 0, len(schedule)), TotalCost: total}
		for _, t := range schedule {
			r.Order = append(r.Order, reportTask{ID: t.ID(), Name: t.Name(), Cost: t.Cost()})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if _, err := fmt.Fprintln(w, "Task execution order:"); err != nil {
		return err
	}
	for i, t := range schedule {
		if _, err := fmt.Fprintf(w, "%3d. %s\n", i+1, t); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total execution time: %d units\n", total)
	return err
}
