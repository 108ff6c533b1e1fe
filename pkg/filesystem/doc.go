// Package filesystem abstracts the file access amake needs for project
// documents and generated build scripts.
//
// NewOS talks to the real disk; NewAferoFS wraps any afero.Fs, which tests
// use with an in-memory filesystem.
package filesystem
