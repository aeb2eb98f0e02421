// Package app contains the application logic around the registry: it loads
// task files, registers their tasks and edges, schedules them and reports
// the result, decoupled from any specific entrypoint like a CLI.
package app
