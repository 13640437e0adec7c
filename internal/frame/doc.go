// Package frame implements the table operations the pipeline is built from:
// type inference for parsed CSV records, inner joins, column removal, row
// filtering and duplicate removal.
//
// Every operation returns a new msgetl.Table and leaves its inputs untouched.
// Row slices of the result may be shared with the input when the operation
// does not change their contents.
package frame
