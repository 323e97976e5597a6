// Package xise decodes ISE project descriptors (.xise files).
//
// A descriptor is an XML document in the http://www.xilinx.com/XMLSchema
// namespace. Its files element lists every file of the design with a type
// (FILE_VERILOG, FILE_UCF, FILE_COREGENISE, ...) and zero or more
// associations. Only files associated with "Implementation" take part in a
// build; the association's seqID orders them. The properties element holds
// the project settings (device, package, top instance, ...).
//
// The package does no path normalization: names are returned exactly as the
// descriptor spells them, relative to the descriptor's directory.
package xise
