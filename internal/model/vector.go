// Package model defines the data structures for task grading.
package model

// Vector is one golden stdin/stdout pair for a task. A vector without a
// golden output file (HasWant false) is a smoke vector: the program must run
// and exit cleanly but its output is not compared.
type Vector struct {
	Name    string
	Input   []byte
	Want    []byte
	HasWant bool
	Hidden  bool
}
