// Package gen provides the file-operation planning and execution layer.
//
// Generators produce []Operation values describing what would be created on
// disk; Execute validates the whole plan up front and then performs it. This
// keeps text generation pure and testable, and gives callers dry-run support
// for free.
package gen
