package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/vk/taskorder/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envDefaults are read from the environment before flags are parsed; any
// flag given on the command line wins.
type envDefaults struct {
	TaskPaths []string `env:"TASKORDER_TASKS" envSeparator:","`
	LogFormat string   `env:"TASKORDER_LOG_FORMAT" envDefault:"text"`
	LogLevel  string   `env:"TASKORDER_LOG_LEVEL" envDefault:"info"`
	Output    string   `env:"TASKORDER_OUTPUT" envDefault:"text"`
}

// pathList collects repeated -tasks/-t flags.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("path must not be empty")
	}
	*p = append(*p, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid environment configuration: %v", err)}
	}

	flagSet := flag.NewFlagSet("taskorder", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
taskorder - orders tasks so that every task runs after the tasks it depends on.

Usage:
  taskorder [options] [TASK_PATH ...]

Arguments:
  TASK_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Environment:
  TASKORDER_TASKS, TASKORDER_LOG_FORMAT, TASKORDER_LOG_LEVEL, TASKORDER_OUTPUT
    Defaults for the matching options.

Options:
`)
		flagSet.PrintDefaults()
	}

	var paths pathList
	flagSet.Var(&paths, "tasks", "Path to a task file or directory. May be repeated.")
	flagSet.Var(&paths, "t", "Path to a task file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	outputFlag := flagSet.String("output", defaults.Output, "Report format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	taskPaths := append([]string(nil), paths...)
	taskPaths = append(taskPaths, flagSet.Args()...)
	if len(taskPaths) == 0 {
		for _, p := range defaults.TaskPaths {
			if p = strings.TrimSpace(p); p != "" {
				taskPaths = append(taskPaths, p)
			}
		}
	}
	slog.Debug("Task paths determined.", "paths", taskPaths)

	if len(taskPaths) == 0 {
		slog.Debug("No task path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		TaskPaths: taskPaths,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
		Output:    strings.ToLower(*outputFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
