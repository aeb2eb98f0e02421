package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a task file. Any block other than
// `task` is rejected by the decoder.
type fileRoot struct {
	Tasks []*taskBlock `hcl:"task,block"`
}

// taskBlock is one `task "<id>" { ... }` block.
//
// Cost is kept as the raw attribute so it can be converted through cty with a
// precise error message, see decodeCost. gohcl does not enforce presence for
// attribute fields; checkRequired does.
type taskBlock struct {
	ID        string         `hcl:"id,label"`
	Name      string         `hcl:"name"`
	Cost      *hcl.Attribute `hcl:"cost,attr"`
	DependsOn []string       `hcl:"depends_on,optional"`
	DefRange  hcl.Range      `hcl:",def_range"`
}

// checkRequired reports attributes the decoder leaves unset when absent.
func (b *taskBlock) checkRequired() hcl.Diagnostics {
	if b.Cost != nil {
		return nil
	}
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Missing required argument",
		Detail:   `The argument "cost" is required, but no definition was found.`,
		Subject:  b.DefRange.Ptr(),
	}}
}
