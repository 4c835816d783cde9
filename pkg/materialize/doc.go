// Package materialize writes a reordered copy of a set of image files.
//
// Given the input folder and a list of files, it computes the new order
// with package reorder, creates "<folder>_reordered" beside the input
// folder, and copies each file there as 0001.<ext>, 0002.<ext>, ... in
// the new order. Sources are never modified.
//
// Copies run one at a time. The first failure stops the run and files
// already copied stay in the output directory; there is no rollback.
package materialize
