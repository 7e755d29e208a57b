// Package filesystem provides the file access used by file-backed
// arguments: a small FS interface with OS and afero implementations,
// and a LineReader that turns a file into its sequence of lines.
package filesystem
