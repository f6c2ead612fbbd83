// Package contacts provides the repository for address-book contacts.
//
// # Overview
//
// The package defines a Repository interface used by the services and an
// in-memory implementation (InMemoryRepository) that loads the whole
// collection from a storage.Storage when built and writes it back on Flush.
//
// # Keys
//
// Contacts are keyed by their lowercased name, so "Ivan" and "IVAN" are the
// same contact. Listing keeps insertion order.
//
// # Concurrency
//
// The in-memory implementation is meant for a single interactive session
// and is not safe for concurrent use.
package contacts
