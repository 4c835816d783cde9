// Package reorder computes the page order imgreorder writes files in.
//
// The order is a fixed pattern over positions, independent of content:
//
//   - the last element comes first;
//   - then, walking backwards from the element just before it, pairs are
//     taken and skipped alternately, each taken pair kept in its original
//     order, with a leftover single element at the front counted as skipped;
//   - finally every skipped element is appended in its original order.
//
// For eight elements a..h this yields h, then f g, then b c, then a d e:
//
//	input:  a b c d e f g h
//	output: h f g b c a d e
//
// # Usage
//
//	ordered := reorder.Reorder(files)
//
// Reorder never fails, performs no I/O, and returns a new slice that is a
// permutation of its input. It is not idempotent.
package reorder
