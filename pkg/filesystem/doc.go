// Package filesystem provides filesystem implementations for imgreorder.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and an afero-backed filesystem used by tests.
package filesystem
