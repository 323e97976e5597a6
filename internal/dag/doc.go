// Package dag is a small directed acyclic graph of string IDs. The assembler
// uses it to link the stages of a run by the files they produce and read,
// and to check that the stages come out in an order every tool can run in.
package dag
