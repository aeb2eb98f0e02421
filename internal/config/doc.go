// Package config defines the format-agnostic model of a task file and the
// Loader interface that fills it.
//
// The `config.Model` is what the app layer feeds into the registry. Concrete
// loaders, such as the HCL one, live in separate packages.
package config
