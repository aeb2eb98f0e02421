package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/fsutil"
)

const fileExtension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL task file loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load discovers every .hcl file under paths, decodes their `task` blocks and
// returns them as one model. Paths that do not exist, and files named
// directly without the .hcl extension, are skipped with a warning.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	found, err := fsutil.FindFilesByExtension(paths, fileExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to discover task files: %w", err)
	}
	for _, m := range found.Missing {
		logger.Warn("Task path does not exist, skipping.", "path", m)
	}
	for _, f := range found.Ignored {
		logger.Warn("Ignoring file without .hcl extension.", "path", f)
	}
	logger.Debug("Discovered HCL files.", "count", len(found.Files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range found.Files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		for _, block := range root.Tasks {
			diags = append(diags, block.checkRequired()...)
		}
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Tasks {
			def, err := translateTask(ctx, block, file)
			if err != nil {
				return nil, err
			}
			model.Tasks = append(model.Tasks, def)
		}
		logger.Debug("Decoded task file.", "file", file, "tasks", len(root.Tasks))
	}

	logger.Debug("HCL loading complete.", "tasks", len(model.Tasks), "dependencies", model.DependencyCount())
	return model, nil
}
