// Package cli implements the interactive shell of the assistant: it parses
// command lines, calls the contacts and notes services and renders their
// results.
//
// The storage back-end is picked by configuration: JSON, YAML or gob files,
// a SQLite database, or memory only. Data is saved on exit, on end of input,
// on interrupt and by the save command.
package cli
