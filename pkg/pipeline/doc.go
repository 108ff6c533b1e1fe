// Package pipeline parses and runs amake value pipelines.
//
// A pipeline is a string of stages separated by '|':
//
//	strip_each | no_empty | posixpath_each | prefix_each '-I' | join
//
// Each stage is a function name followed by space separated literal
// arguments. The executor resolves names against a FunctionRegistry and
// threads the output of each stage into the next. An empty pipeline is the
// identity.
//
// Parsing is lenient: unterminated quotes or brackets are absorbed into the
// current token, and arguments that are not valid literals are passed on as
// plain strings. Unknown stage names and failing stages are reported with the
// stage name and its 0-based position.
package pipeline
