// Package app contains the core application logic. It wires preference
// loading, project resolution, option compilation and command assembly
// together, decoupled from any specific entrypoint like the CLI.
package app
