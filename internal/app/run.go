package app

import (
	"context"
	"fmt"

	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/task"
)

// Run loads the configured task files, registers every task and dependency,
// schedules them and writes the report. The registry is cleared first, so
// Run may be called more than once.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.TaskPaths...)
	if err != nil {
		return fmt.Errorf("failed to load task files: %w", err)
	}
	a.logger.Debug("Task files loaded.", "tasks", len(model.Tasks), "dependencies", model.DependencyCount())

	a.registry.Clear()
	if err := a.populate(ctx, model); err != nil {
		return err
	}

	if a.registry.Len() == 0 {
		a.logger.Warn("No tasks found, nothing to schedule.")
	}

	schedule, err := a.registry.Schedule()
	if err != nil {
		return fmt.Errorf("failed to schedule tasks: %w", err)
	}
	total := a.registry.TotalExecutionTime()
	a.logger.Info("Tasks scheduled.", "count", len(schedule), "total_cost", total)

	if err := writeReport(a.outW, a.config.Output, schedule, total); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// populate adds every task first and every edge second, so a dependency may
// reference a task declared later or in another file.
func (a *App) populate(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	for _, def := range model.Tasks {
		t, err := task.New(def.ID, def.Name, def.Cost)
		if err != nil {
			return fmt.Errorf("task %q in %s: %w", def.ID, def.Source, err)
		}
		if err := a.registry.AddTask(t); err != nil {
			return fmt.Errorf("task %q in %s: %w", def.ID, def.Source, err)
		}
	}
	logger.Debug("Tasks registered.", "count", a.registry.Len())

	edges := 0
	for _, def := range model.Tasks {
		for _, dep := range def.DependsOn {
			if err := a.registry.AddDependency(def.ID, dep); err != nil {
				return fmt.Errorf("task %q in %s: %w", def.ID, def.Source, err)
			}
			edges++
		}
	}
	logger.Debug("Dependencies registered.", "count", edges)
	return nil
}
