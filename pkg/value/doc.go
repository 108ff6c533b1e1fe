// Package value defines the typed values that flow through amake pipelines.
//
// A Value is a small tagged union over None, bool, int, float, str, list and
// tuple. Values are immutable once built; list and tuple constructors copy
// their items. Rendering, truthiness and equality follow the rules schema
// authors already know from Python, since that is the notation pipeline
// arguments are written in.
package value
