// Package types defines the core types and interfaces shared by imgreorder's
// packages: the FS capability the scanner and materializer call into, and
// the result structures returned by the commands.
package types
