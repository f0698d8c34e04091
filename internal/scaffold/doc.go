// Package scaffold creates the research project skeleton on disk. It guards
// against clobbering an existing target, creates the directory tree in a
// fixed order, renders README.md from an optional external template with a
// generated fallback, and writes the zero-byte placeholder files.
package scaffold
