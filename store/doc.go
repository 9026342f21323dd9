// SPDX-License-Identifier: MIT

// Package store persists exercise records: the parameters a student entered
// for one numbered exercise, keyed by an integer "no".
//
// Every field of a Record is kept as text, exactly as a form submits it. The
// typed accessors (Float, Int, Matrix, Vector, Floats) parse on demand, so a
// half-filled record can still be stored and fetched.
//
// Two Repository backends are provided:
//
//   - Memory: a map guarded by a sync.RWMutex, safe for concurrent use.
//   - File: a Memory whose contents are written to a JSON snapshot after
//     every mutation and loaded back by OpenFile.
//
// Put only replaces an existing record and fails with ErrNotFound otherwise;
// new records go through Insert.
package store
