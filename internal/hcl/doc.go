// Package hcl provides the concrete HCL implementation of config.Loader.
// It is responsible for file discovery, parsing, block decoding and the
// cty conversion of attribute values into the format-agnostic model.
package hcl
