package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateTask converts a decoded task block into the agnostic model.
// Field-level rules (blank names, negative cost) are left to task.New.
func translateTask(ctx context.Context, b *taskBlock, source string) (*config.TaskDefinition, error) {
	cost, err := decodeCost(ctx, b.Cost.Expr)
	if err != nil {
		return nil, fmt.Errorf("task %q in %s: invalid cost: %w", b.ID, source, err)
	}

	deps := make([]string, len(b.DependsOn))
	copy(deps, b.DependsOn)

	return &config.TaskDefinition{
		ID:        b.ID,
		Name:      b.Name,
		Cost:      cost,
		DependsOn: deps,
		Source:    source,
	}, nil
}

// decodeCost evaluates the cost expression and converts it to a whole int64.
// Strings holding numbers are accepted through cty's implicit conversion.
func decodeCost(ctx context.Context, expr hcl.Expression) (int64, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return 0, fmt.Errorf("cost must not be null")
	}
	if !val.IsKnown() {
		return 0, fmt.Errorf("cost must be a known value")
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to number: %w", val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(cty.Number) {
		logger.Debug("Implicitly converted cost.", "from", val.Type().FriendlyName(), "to", cty.Number.FriendlyName())
	}

	var cost int64
	if err := gocty.FromCtyValue(num, &cost); err != nil {
		return 0, err
	}
	return cost, nil
}
