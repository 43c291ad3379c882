// Package cppsmith is an interactive scaffolding tool for C++ projects: it
// builds a project tree in memory (project → modules → classes → members)
// and materializes it as directories of generated header and source files.
package cppsmith

// Version is the current cppsmith release.
const Version = "0.1.0"
