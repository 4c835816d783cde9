// Package testutil provides fixtures for testing imgreorder components.
//
// Key helpers:
//   - ImageFolder: a real folder of small files under t.TempDir()
//   - MemImageFolder: the same layout on an afero in-memory filesystem
//   - CreateFile, CreateDir, CreateSymlink: single-entry fixtures
//   - AssertFileContent, DirNames: checks on materialized output
//
// Files created by these helpers contain their own base name, so a copy
// can be traced back to its source by reading it.
package testutil
