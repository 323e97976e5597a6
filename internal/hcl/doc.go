// Package hcl provides the HCL implementation of config.Loader. Preference
// files declare a toolchain block and one process block per tool process:
//
//	toolchain {
//	  intstyle = "silent"
//	}
//
//	process "Map" {
//	  options = {
//	    "Placer Effort Level"      = "High"
//	    "Trim Unconnected Signals" = true
//	  }
//	}
//
// Process labels accept tool names ("map") as well. Option values may be
// strings, numbers, booleans, null, or lists of strings, which are joined
// with spaces for the list-valued options.
package hcl
