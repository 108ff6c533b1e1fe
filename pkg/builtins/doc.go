// Package builtins provides the stage functions every amake pipeline can use.
//
// The names and parameter lists are part of the pipeline language and must
// stay stable. Behaviour follows the Python semantics schema authors write
// against: truthiness, str() rendering, slicing with negative indices and
// concatenation with '+'. Functions that only take the input ignore any
// stage arguments; the others reject missing or extra arguments.
package builtins
