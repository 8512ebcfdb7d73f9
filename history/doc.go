// Package history records generated output so past explanations and
// commit messages can be reviewed with `gas history`.
//
// Records are stored as individual JSON files under a base directory
// (default ~/.local/share/gas/history), one file per generation,
// listed newest-first. History writes are best-effort: a failure to
// record never fails the command that produced the output.
package history
