// Package assemble turns compiled options and a resolved project into the
// artifacts of an ISE implementation run: the XST script and its .prj
// source list, one command line per stage, and a depfile naming every file
// the run depends on. Nothing here executes a tool.
package assemble
