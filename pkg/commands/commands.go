// Package commands provides high-level command implementations for imgreorder.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the scanner and materializer.
//
// Each command is implemented in its own subdirectory:
//   - list/    - ListImages command
//   - reorder/ - ReorderAndMaterialize and PlanReorder commands
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"github.com/arthur-debert/imgreorder/pkg/commands/list"
	"github.com/arthur-debert/imgreorder/pkg/commands/reorder"
	"github.com/arthur-debert/imgreorder/pkg/types"
)

// ListImages finds the image files directly inside a folder.
type ListImagesOptions = list.ListImagesOptions

func ListImages(opts ListImagesOptions) (*types.ListImagesResult, error) {
	return list.ListImages(opts)
}

// ReorderAndMaterialize writes the reordered copy of the given files.
type ReorderOptions = reorder.ReorderOptions

func ReorderAndMaterialize(opts ReorderOptions) (*types.ReorderResult, error) {
	return reorder.ReorderAndMaterialize(opts)
}

// PlanReorder previews ReorderAndMaterialize without writing anything.
func PlanReorder(opts ReorderOptions) (*types.ReorderResult, error) {
	return reorder.PlanReorder(opts)
}
