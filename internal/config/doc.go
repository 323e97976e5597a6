// Package config defines the format-agnostic preference model: the options
// set for each tool process plus toolchain-wide settings, together with the
// Loader interface implemented by concrete formats such as HCL.
//
// The Model is what the option compiler consumes. Command-line overrides
// are parsed here too so that every source of preferences ends up in the
// same shape.
package config
