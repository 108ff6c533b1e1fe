// Package registry provides a generic, thread-safe registry of named items.
//
// Registries are populated once and then frozen. A frozen registry rejects
// further mutation, so it can be shared by any number of readers without
// additional coordination.
package registry
