// Package schema models the two project documents amake works from.
//
// A Schema (amake.schema.json) declares the variables a Makefile accepts:
// their type, default value and the pipeline that turns a configured value
// into the text passed on the command line. A Configuration
// (amake.config.json) holds the chosen target, make options and variable
// values for one build.
//
// Both documents keep the key order of their JSON objects, since variables
// and options are emitted on the command line in that order.
package schema
