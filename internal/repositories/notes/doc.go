// Package notes provides the repository for notes and the generator of
// their ids.
//
// InMemoryRepository loads every note from a storage.Storage when built and
// writes them back on Flush. Ids start after the largest loaded id and are
// never handed out twice within a process, even after deletions.
package notes
